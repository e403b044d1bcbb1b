package controllers

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/presentation/controllers/dtos"
	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/httpapi"
)

// CitiesController serves the public, unauthenticated directory endpoints.
type CitiesController struct {
	cities   *services.CityService
	stores   *services.StoreService
	basePath string
}

func NewCitiesController(cities *services.CityService, stores *services.StoreService) *CitiesController {
	return &CitiesController{
		cities:   cities,
		stores:   stores,
		basePath: "/cities",
	}
}

func (c *CitiesController) Key() string {
	return c.basePath
}

func (c *CitiesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id}/stores", c.Stores).Methods(http.MethodGet)
}

func (c *CitiesController) List(w http.ResponseWriter, r *http.Request) {
	entities, err := c.cities.GetAll(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list cities")
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
		return
	}
	items := make([]*dtos.CityResponse, 0, len(entities))
	for _, entity := range entities {
		items = append(items, dtos.NewCityResponse(entity))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, items)
}

func (c *CitiesController) Stores(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_CITY_ID", "city id must be a UUID", nil)
		return
	}
	if _, err := c.cities.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, city.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "CITY_NOT_FOUND", "city not found", nil)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load city")
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
		return
	}
	entities, err := c.stores.GetByCity(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list city stores")
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewStoreListResponse(entities))
}
