package services_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/domain/entities/operator"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/importing"
	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/eventbus"
	"github.com/refilllocal/directory/pkg/logging"
	"github.com/refilllocal/directory/pkg/spreadsheet"
)

// stubTx satisfies composables.Tx so commits can join an ambient transaction
// without a database; the fake repositories never touch it.
type stubTx struct{}

func (stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

type fakeStoreRepository struct {
	refs    map[string]store.Ref
	refsErr error
	created []store.Store
}

func (f *fakeStoreRepository) GetByCity(ctx context.Context, cityID uuid.UUID) ([]store.Store, error) {
	return nil, nil
}

func (f *fakeStoreRepository) RefsByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]store.Ref, error) {
	if f.refsErr != nil {
		return nil, f.refsErr
	}
	refs := make(map[string]store.Ref)
	for _, id := range placeIDs {
		if ref, ok := f.refs[id]; ok {
			refs[id] = ref
		}
	}
	return refs, nil
}

func (f *fakeStoreRepository) CreateMany(ctx context.Context, stores []store.Store) (int64, error) {
	var inserted int64
	for _, s := range stores {
		if _, dup := f.refs[s.GooglePlaceID()]; dup {
			continue
		}
		if f.refs == nil {
			f.refs = make(map[string]store.Ref)
		}
		f.refs[s.GooglePlaceID()] = store.Ref{ID: s.ID(), Name: s.Name()}
		f.created = append(f.created, s)
		inserted++
	}
	return inserted, nil
}

type fakeCityRepository struct {
	cities map[uuid.UUID]city.City
}

func (f *fakeCityRepository) GetAll(ctx context.Context) ([]city.City, error) {
	return nil, nil
}

func (f *fakeCityRepository) GetByID(ctx context.Context, id uuid.UUID) (city.City, error) {
	return f.cities[id], nil
}

func (f *fakeCityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.cities[id]
	return ok, nil
}

func newBus() eventbus.EventBus {
	return eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
}

func adminContext() context.Context {
	admin := operator.New("admin@example.com", "Admin", operator.WithAdmin(true))
	ctx := composables.WithOperator(context.Background(), admin)
	return composables.WithTx(ctx, stubTx{})
}

func storeSheet(rows ...spreadsheet.Row) *spreadsheet.Sheet {
	return &spreadsheet.Sheet{
		Header: []string{"name", "full_address", "latitude", "longitude", "place_id", "working_hours"},
		Rows:   rows,
	}
}

func storeRow(name, placeID string) spreadsheet.Row {
	return spreadsheet.Row{
		"name":          name,
		"full_address":  "1 Main St",
		"latitude":      "40.7",
		"longitude":     "-74.0",
		"place_id":      placeID,
		"working_hours": `{"Monday": "9AM-5PM"}`,
	}
}

func TestStoreImportService_Validate(t *testing.T) {
	existingID := uuid.New()
	repo := &fakeStoreRepository{
		refs: map[string]store.Ref{
			"existing": {ID: existingID, Name: "Old Store"},
		},
	}
	svc := services.NewStoreImportService(repo, &fakeCityRepository{}, newBus())

	t.Run("classifies every row exactly once", func(t *testing.T) {
		sheet := storeSheet(
			storeRow("Fresh Store", "new-place"),
			storeRow("Dup Store", "existing"),
			spreadsheet.Row{"name": "Broken", "full_address": "2 Main St", "latitude": "not-a-number", "longitude": "-74.0", "place_id": "another"},
		)
		result, err := svc.Validate(context.Background(), sheet)
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		require.Len(t, result.Valid, 1)
		require.Len(t, result.Duplicates, 1)
		require.Len(t, result.Errors, 1)
		assert.True(t, result.Consistent())

		assert.Equal(t, "Fresh Store", result.Valid[0].Name)
		assert.Equal(t, "09:00", result.Valid[0].Hours.Monday.Open)
		assert.Equal(t, store.Ref{ID: existingID, Name: "Old Store"}, result.Duplicates[0].Existing)
		assert.Contains(t, result.Errors[0].Reason, "invalid latitude")
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		sheet := storeSheet(storeRow("Fresh Store", "new-place"))
		first, err := svc.Validate(context.Background(), sheet)
		require.NoError(t, err)
		second, err := svc.Validate(context.Background(), sheet)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing required column aborts the batch", func(t *testing.T) {
		sheet := &spreadsheet.Sheet{
			Header: []string{"name", "full_address", "longitude", "place_id"},
			Rows:   []spreadsheet.Row{storeRow("Fresh Store", "new-place")},
		}
		result, err := svc.Validate(context.Background(), sheet)
		assert.Nil(t, result)

		var missing *importing.MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"latitude"}, missing.Columns)
	})

	t.Run("rejects rows without a place id", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), storeSheet(storeRow("No Place", "")))
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "missing place id", result.Errors[0].Reason)
	})

	t.Run("failed bulk lookup aborts the batch", func(t *testing.T) {
		lookupErr := errors.New("connection refused")
		broken := services.NewStoreImportService(
			&fakeStoreRepository{refsErr: lookupErr},
			&fakeCityRepository{},
			newBus(),
		)
		result, err := broken.Validate(context.Background(), storeSheet(storeRow("Fresh Store", "new-place")))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("duplicates are never valid", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), storeSheet(
			storeRow("Dup Store", "existing"),
			storeRow("Dup Store Again", "existing"),
		))
		require.NoError(t, err)
		assert.Empty(t, result.Valid)
		assert.Len(t, result.Duplicates, 2)
	})
}

func TestStoreImportService_Commit(t *testing.T) {
	cityID := uuid.New()
	cities := &fakeCityRepository{cities: map[uuid.UUID]city.City{
		cityID: city.New("Brooklyn", "brooklyn", "NY", city.WithID(cityID)),
	}}
	dto := &store.CreateDTO{
		Name:          "Fresh Store",
		Address:       "1 Main St",
		Latitude:      40.7,
		Longitude:     -74.0,
		GooglePlaceID: "new-place",
	}

	t.Run("persists the batch and reports the inserted count", func(t *testing.T) {
		repo := &fakeStoreRepository{}
		svc := services.NewStoreImportService(repo, cities, newBus())

		count, err := svc.Commit(adminContext(), []*store.CreateDTO{dto}, cityID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		require.Len(t, repo.created, 1)

		created := repo.created[0]
		assert.Equal(t, cityID, created.CityID())
		assert.True(t, created.Verified())
		assert.Equal(t, store.PlaceholderDescription, created.Description())
	})

	t.Run("skips rows that raced in since validation", func(t *testing.T) {
		repo := &fakeStoreRepository{refs: map[string]store.Ref{"new-place": {ID: uuid.New()}}}
		svc := services.NewStoreImportService(repo, cities, newBus())

		count, err := svc.Commit(adminContext(), []*store.CreateDTO{dto}, cityID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		svc := services.NewStoreImportService(&fakeStoreRepository{}, cities, newBus())
		_, err := svc.Commit(adminContext(), nil, cityID)
		assert.ErrorIs(t, err, services.ErrEmptyImport)
	})

	t.Run("requires a target city", func(t *testing.T) {
		svc := services.NewStoreImportService(&fakeStoreRepository{}, cities, newBus())
		_, err := svc.Commit(adminContext(), []*store.CreateDTO{dto}, uuid.Nil)
		assert.ErrorIs(t, err, services.ErrCityRequired)

		_, err = svc.Commit(adminContext(), []*store.CreateDTO{dto}, uuid.New())
		assert.ErrorIs(t, err, services.ErrCityNotFound)
	})

	t.Run("requires an authenticated admin", func(t *testing.T) {
		svc := services.NewStoreImportService(&fakeStoreRepository{}, cities, newBus())
		_, err := svc.Commit(context.Background(), []*store.CreateDTO{dto}, cityID)
		assert.ErrorIs(t, err, composables.ErrNoOperator)

		viewer := operator.New("viewer@example.com", "Viewer")
		ctx := composables.WithOperator(context.Background(), viewer)
		_, err = svc.Commit(ctx, []*store.CreateDTO{dto}, cityID)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
	})

	t.Run("requires database plumbing in the context", func(t *testing.T) {
		svc := services.NewStoreImportService(&fakeStoreRepository{}, cities, newBus())
		admin := operator.New("admin@example.com", "Admin", operator.WithAdmin(true))
		ctx := composables.WithOperator(context.Background(), admin)
		_, err := svc.Commit(ctx, []*store.CreateDTO{dto}, cityID)
		assert.ErrorIs(t, err, composables.ErrNoPool)
	})

	t.Run("publishes an imported event", func(t *testing.T) {
		repo := &fakeStoreRepository{}
		bus := newBus()
		var published *store.ImportedEvent
		bus.Subscribe(func(event *store.ImportedEvent) {
			published = event
		})
		svc := services.NewStoreImportService(repo, cities, bus)

		_, err := svc.Commit(adminContext(), []*store.CreateDTO{dto}, cityID)
		require.NoError(t, err)
		require.NotNil(t, published)
		assert.Equal(t, cityID, published.CityID)
		assert.Equal(t, int64(1), published.Count)
	})
}
