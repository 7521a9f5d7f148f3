package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/models"
)

func (api *RestAPI) sectorsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(models.NewSectorReferences(), models.NewEmptyReferences()))
}
