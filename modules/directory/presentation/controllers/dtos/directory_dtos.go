package dtos

import (
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
)

type CityResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	State string    `json:"state"`
}

func NewCityResponse(entity city.City) *CityResponse {
	return &CityResponse{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Slug:  entity.Slug(),
		State: entity.State(),
	}
}

type StoreResponse struct {
	ID               uuid.UUID              `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	Latitude         float64                `json:"latitude"`
	Longitude        float64                `json:"longitude"`
	GooglePlaceID    string                 `json:"googlePlaceId"`
	WebsiteURL       string                 `json:"websiteUrl,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Email            string                 `json:"email,omitempty"`
	Description      string                 `json:"description,omitempty"`
	ImageURL         string                 `json:"imageUrl,omitempty"`
	HoursOfOperation store.HoursOfOperation `json:"hoursOfOperation"`
	IsVerified       bool                   `json:"isVerified"`
}

func NewStoreResponse(entity store.Store) *StoreResponse {
	return &StoreResponse{
		ID:               entity.ID(),
		Name:             entity.Name(),
		Address:          entity.Address(),
		Latitude:         entity.Latitude(),
		Longitude:        entity.Longitude(),
		GooglePlaceID:    entity.GooglePlaceID(),
		WebsiteURL:       entity.WebsiteURL(),
		Phone:            entity.Phone(),
		Email:            entity.Email(),
		Description:      entity.Description(),
		ImageURL:         entity.ImageURL(),
		HoursOfOperation: entity.Hours(),
		IsVerified:       entity.Verified(),
	}
}

func NewStoreListResponse(entities []store.Store) []*StoreResponse {
	items := make([]*StoreResponse, 0, len(entities))
	for _, entity := range entities {
		items = append(items, NewStoreResponse(entity))
	}
	return items
}
