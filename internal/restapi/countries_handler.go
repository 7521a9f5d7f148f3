package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	countries, err := api.StatsManager.StatsDB.ListCountries(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entries := make([]models.CountryReference, 0, len(countries))
	for _, country := range countries {
		entries = append(entries, models.CountryReference{
			ID:      country.ISO3,
			NameEs:  country.NameEs,
			NameEn:  country.NameEn,
			FlagURL: api.StatsManager.CountryFlag(country.ISO3),
		})
	}

	api.sendResponse(w, r, models.NewListResponse(entries, models.NewEmptyReferences()))
}
