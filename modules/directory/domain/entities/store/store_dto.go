package store

import (
	"github.com/google/uuid"
)

// PlaceholderDescription fills business fields the persistence schema requires
// but the import source left blank.
const PlaceholderDescription = "Contact store for details"

// CreateDTO is the canonical importable shape of one store row. It is returned
// to the client by the validation step and round-tripped back on commit.
type CreateDTO struct {
	Name          string           `json:"name" validate:"required"`
	Address       string           `json:"address" validate:"required"`
	Latitude      float64          `json:"latitude"`
	Longitude     float64          `json:"longitude"`
	GooglePlaceID string           `json:"googlePlaceId" validate:"required"`
	WebsiteURL    string           `json:"websiteUrl,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty"`
	Description   string           `json:"description,omitempty"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Hours         HoursOfOperation `json:"hoursOfOperation"`
}

// ToEntity builds the Store aggregate for an admin import: the target city and
// importing operator are attached and the store is verified immediately,
// bypassing moderation.
func (d *CreateDTO) ToEntity(cityID, addedBy uuid.UUID) Store {
	description := d.Description
	if description == "" {
		description = PlaceholderDescription
	}
	return New(
		d.Name,
		d.Address,
		d.Latitude,
		d.Longitude,
		d.GooglePlaceID,
		WithCityID(cityID),
		WithWebsiteURL(d.WebsiteURL),
		WithPhone(d.Phone),
		WithEmail(d.Email),
		WithDescription(description),
		WithImageURL(d.ImageURL),
		WithHours(d.Hours),
		WithVerified(true),
		WithAddedBy(addedBy),
	)
}
