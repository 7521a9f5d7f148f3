package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"rdstats.datos-idi.es/internal/models"
)

// ExtractIDFromParams retrieves a parameter value from the request context and removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return strings.Split(rawID, ".json")[0]
}

// ParseYearParam retrieves an integer year from the provided URL query
// parameters. If the key is missing, it returns 0 with no error recorded so
// callers can apply a default; an unparsable value updates the fieldErrors
// map.
func ParseYearParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	year, err := strconv.Atoi(val)
	if err != nil || year < 1900 || year > 2100 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return year, fieldErrors
}

// ParseSectorParam retrieves a sector from the provided URL query
// parameters, accepting canonical identifiers, source codes and labels in
// either language. A missing value defaults to the total sector.
func ParseSectorParam(params url.Values, key string, fieldErrors map[string][]string) (models.Sector, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return models.SectorTotal, fieldErrors
	}

	sector, ok := models.ParseSector(val)
	if !ok {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return models.SectorTotal, fieldErrors
	}
	return sector, fieldErrors
}
