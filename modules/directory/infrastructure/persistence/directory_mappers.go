package persistence

import (
	"database/sql"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/domain/entities/operator"
	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence/models"
)

func ToDomainCity(dbCity *models.City) (city.City, error) {
	id, err := uuid.Parse(dbCity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid city id")
	}
	return city.New(
		dbCity.Name,
		dbCity.Slug,
		dbCity.State,
		city.WithID(id),
		city.WithActive(dbCity.IsActive),
		city.WithCreatedAt(dbCity.CreatedAt),
	), nil
}

func ToDomainStore(dbStore *models.Store) (store.Store, error) {
	id, err := uuid.Parse(dbStore.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid store id")
	}
	cityID, err := uuid.Parse(dbStore.CityID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid city id")
	}

	hours := store.AllClosed()
	if len(dbStore.HoursOfOperation) > 0 {
		if err := json.Unmarshal(dbStore.HoursOfOperation, &hours); err != nil {
			return nil, errors.Wrap(err, "invalid hours of operation")
		}
	}

	options := []store.Option{
		store.WithID(id),
		store.WithCityID(cityID),
		store.WithWebsiteURL(dbStore.WebsiteURL.String),
		store.WithPhone(dbStore.Phone.String),
		store.WithEmail(dbStore.Email.String),
		store.WithDescription(dbStore.Description),
		store.WithImageURL(dbStore.ImageURL.String),
		store.WithHours(hours),
		store.WithVerified(dbStore.IsVerified),
		store.WithCreatedAt(dbStore.CreatedAt),
		store.WithUpdatedAt(dbStore.UpdatedAt),
	}
	if dbStore.AddedBy.Valid {
		addedBy, err := uuid.Parse(dbStore.AddedBy.String)
		if err != nil {
			return nil, errors.Wrap(err, "invalid added_by id")
		}
		options = append(options, store.WithAddedBy(addedBy))
	}

	return store.New(
		dbStore.Name,
		dbStore.Address,
		dbStore.Latitude,
		dbStore.Longitude,
		dbStore.GooglePlaceID,
		options...,
	), nil
}

func ToDBStore(entity store.Store) (*models.Store, error) {
	hours, err := json.Marshal(entity.Hours())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal hours of operation")
	}
	dbStore := &models.Store{
		ID:               entity.ID().String(),
		CityID:           entity.CityID().String(),
		Name:             entity.Name(),
		Address:          entity.Address(),
		Latitude:         entity.Latitude(),
		Longitude:        entity.Longitude(),
		GooglePlaceID:    entity.GooglePlaceID(),
		WebsiteURL:       nullString(entity.WebsiteURL()),
		Phone:            nullString(entity.Phone()),
		Email:            nullString(entity.Email()),
		Description:      entity.Description(),
		ImageURL:         nullString(entity.ImageURL()),
		HoursOfOperation: hours,
		IsVerified:       entity.Verified(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
	if entity.AddedBy() != uuid.Nil {
		dbStore.AddedBy = nullString(entity.AddedBy().String())
	}
	return dbStore, nil
}

func ToDomainReview(dbReview *models.StoreReview) (review.Review, error) {
	id, err := uuid.Parse(dbReview.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid review id")
	}
	storeID, err := uuid.Parse(dbReview.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid store id")
	}
	return review.New(
		storeID,
		dbReview.PlaceID,
		dbReview.ExternalID,
		dbReview.Rating,
		dbReview.ReviewedAt,
		review.WithID(id),
		review.WithAuthorName(dbReview.AuthorName.String),
		review.WithText(dbReview.ReviewText.String),
		review.WithOwnerAnswer(dbReview.OwnerAnswer.String, dbReview.OwnerAnsweredAt.String),
		review.WithLikes(dbReview.LikesCount),
		review.WithCreatedAt(dbReview.CreatedAt),
	), nil
}

func ToDBReview(entity review.Review) *models.StoreReview {
	return &models.StoreReview{
		ID:              entity.ID().String(),
		StoreID:         entity.StoreID().String(),
		PlaceID:         entity.PlaceID(),
		ExternalID:      entity.ExternalID(),
		AuthorName:      nullString(entity.AuthorName()),
		ReviewText:      nullString(entity.Text()),
		Rating:          entity.Rating(),
		ReviewedAt:      entity.ReviewedAt(),
		OwnerAnswer:     nullString(entity.OwnerAnswer()),
		OwnerAnsweredAt: nullString(entity.OwnerAnsweredAt()),
		LikesCount:      entity.Likes(),
		CreatedAt:       entity.CreatedAt(),
	}
}

func ToDomainOperator(dbOperator *models.Operator) (operator.Operator, error) {
	id, err := uuid.Parse(dbOperator.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid operator id")
	}
	return operator.New(
		dbOperator.Email,
		dbOperator.Name,
		operator.WithID(id),
		operator.WithAdmin(dbOperator.IsAdmin),
		operator.WithCreatedAt(dbOperator.CreatedAt),
	), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
