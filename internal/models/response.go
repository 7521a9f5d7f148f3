package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry with its references.
type EntryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

// ListData wraps a list payload with its references.
type ListData struct {
	List       interface{}     `json:"list"`
	References ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the current epoch time in milliseconds, the
// timestamp format the response envelope uses.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewEntryResponse creates a successful single-entry response.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data: EntryData{
			Entry:      entry,
			References: references,
		},
		Text:    "OK",
		Version: 2,
	}
}

// NewListResponse creates a successful list response.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data: ListData{
			List:       list,
			References: references,
		},
		Text:    "OK",
		Version: 2,
	}
}
