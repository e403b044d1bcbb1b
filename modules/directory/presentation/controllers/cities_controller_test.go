package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/presentation/controllers"
	"github.com/refilllocal/directory/modules/directory/presentation/controllers/dtos"
	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/logging"
	"github.com/refilllocal/directory/pkg/middleware"
)

type fakeCityRepository struct {
	cities  []city.City
	listErr error
}

func (f *fakeCityRepository) GetAll(ctx context.Context) ([]city.City, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cities, nil
}

func (f *fakeCityRepository) GetByID(ctx context.Context, id uuid.UUID) (city.City, error) {
	for _, c := range f.cities {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, city.ErrNotFound
}

func (f *fakeCityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := f.GetByID(ctx, id)
	if errors.Is(err, city.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeCityStoreRepository struct {
	stores []store.Store
}

func (f *fakeCityStoreRepository) GetByCity(ctx context.Context, cityID uuid.UUID) ([]store.Store, error) {
	matched := make([]store.Store, 0, len(f.stores))
	for _, s := range f.stores {
		if s.CityID() == cityID {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (f *fakeCityStoreRepository) RefsByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]store.Ref, error) {
	return map[string]store.Ref{}, nil
}

func (f *fakeCityStoreRepository) CreateMany(ctx context.Context, stores []store.Store) (int64, error) {
	return int64(len(stores)), nil
}

func newCitiesRouter(cities *fakeCityRepository, stores *fakeCityStoreRepository) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.WithLogger(logging.ConsoleLogger(logrus.ErrorLevel)))
	controllers.NewCitiesController(
		services.NewCityService(cities),
		services.NewStoreService(stores),
	).Register(r)
	return r
}

func TestCitiesController_List(t *testing.T) {
	brooklyn := city.New("Brooklyn", "brooklyn", "NY")
	portland := city.New("Portland", "portland", "OR")
	router := newCitiesRouter(&fakeCityRepository{cities: []city.City{brooklyn, portland}}, &fakeCityStoreRepository{})

	t.Run("lists all cities", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/cities", nil)
		require.NoError(t, err)
		rr := doRequest(router, req, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var items []*dtos.CityResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Brooklyn", items[0].Name)
		assert.Equal(t, "portland", items[1].Slug)
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		failing := newCitiesRouter(&fakeCityRepository{listErr: errors.New("connection refused")}, &fakeCityStoreRepository{})
		req, err := http.NewRequest(http.MethodGet, "/cities", nil)
		require.NoError(t, err)
		rr := doRequest(failing, req, "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestCitiesController_Stores(t *testing.T) {
	brooklyn := city.New("Brooklyn", "brooklyn", "NY")
	listed := store.New("Refill Away", "123 Smith St", 40.68, -73.99, "place-1",
		store.WithCityID(brooklyn.ID()), store.WithVerified(true))
	elsewhere := store.New("Other Town Goods", "9 Elm St", 45.52, -122.67, "place-2",
		store.WithCityID(uuid.New()))
	router := newCitiesRouter(
		&fakeCityRepository{cities: []city.City{brooklyn}},
		&fakeCityStoreRepository{stores: []store.Store{listed, elsewhere}},
	)

	t.Run("lists the city's stores", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/cities/"+brooklyn.ID().String()+"/stores", nil)
		require.NoError(t, err)
		rr := doRequest(router, req, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var items []*dtos.StoreResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Refill Away", items[0].Name)
		assert.True(t, items[0].IsVerified)
	})

	t.Run("unknown city maps to 404", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/cities/"+uuid.NewString()+"/stores", nil)
		require.NoError(t, err)
		rr := doRequest(router, req, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "CITY_NOT_FOUND")
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/cities/not-a-uuid/stores", nil)
		require.NoError(t, err)
		rr := doRequest(router, req, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "INVALID_CITY_ID")
	})
}
