package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is one listed refill / zero-waste store. GooglePlaceID is the natural
// deduplication key: no two stores share one.
type Store interface {
	ID() uuid.UUID
	CityID() uuid.UUID
	Name() string
	Address() string
	Latitude() float64
	Longitude() float64
	GooglePlaceID() string
	WebsiteURL() string
	Phone() string
	Email() string
	Description() string
	ImageURL() string
	Hours() HoursOfOperation
	Verified() bool
	AddedBy() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

type Option func(s *storeImpl)

func WithID(id uuid.UUID) Option {
	return func(s *storeImpl) {
		s.id = id
	}
}

func WithCityID(id uuid.UUID) Option {
	return func(s *storeImpl) {
		s.cityID = id
	}
}

func WithWebsiteURL(url string) Option {
	return func(s *storeImpl) {
		s.websiteURL = url
	}
}

func WithPhone(phone string) Option {
	return func(s *storeImpl) {
		s.phone = phone
	}
}

func WithEmail(email string) Option {
	return func(s *storeImpl) {
		s.email = email
	}
}

func WithDescription(description string) Option {
	return func(s *storeImpl) {
		s.description = description
	}
}

func WithImageURL(url string) Option {
	return func(s *storeImpl) {
		s.imageURL = url
	}
}

func WithHours(hours HoursOfOperation) Option {
	return func(s *storeImpl) {
		s.hours = hours
	}
}

func WithVerified(verified bool) Option {
	return func(s *storeImpl) {
		s.verified = verified
	}
}

func WithAddedBy(id uuid.UUID) Option {
	return func(s *storeImpl) {
		s.addedBy = id
	}
}

func WithCreatedAt(t time.Time) Option {
	return func(s *storeImpl) {
		s.createdAt = t
	}
}

func WithUpdatedAt(t time.Time) Option {
	return func(s *storeImpl) {
		s.updatedAt = t
	}
}

func New(
	name, address string,
	latitude, longitude float64,
	googlePlaceID string,
	opts ...Option,
) Store {
	s := &storeImpl{
		id:            uuid.New(),
		name:          name,
		address:       address,
		latitude:      latitude,
		longitude:     longitude,
		googlePlaceID: googlePlaceID,
		hours:         AllClosed(),
		createdAt:     time.Now(),
		updatedAt:     time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type storeImpl struct {
	id            uuid.UUID
	cityID        uuid.UUID
	name          string
	address       string
	latitude      float64
	longitude     float64
	googlePlaceID string
	websiteURL    string
	phone         string
	email         string
	description   string
	imageURL      string
	hours         HoursOfOperation
	verified      bool
	addedBy       uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func (s *storeImpl) ID() uuid.UUID           { return s.id }
func (s *storeImpl) CityID() uuid.UUID       { return s.cityID }
func (s *storeImpl) Name() string            { return s.name }
func (s *storeImpl) Address() string         { return s.address }
func (s *storeImpl) Latitude() float64       { return s.latitude }
func (s *storeImpl) Longitude() float64      { return s.longitude }
func (s *storeImpl) GooglePlaceID() string   { return s.googlePlaceID }
func (s *storeImpl) WebsiteURL() string      { return s.websiteURL }
func (s *storeImpl) Phone() string           { return s.phone }
func (s *storeImpl) Email() string           { return s.email }
func (s *storeImpl) Description() string     { return s.description }
func (s *storeImpl) ImageURL() string        { return s.imageURL }
func (s *storeImpl) Hours() HoursOfOperation { return s.hours }
func (s *storeImpl) Verified() bool          { return s.verified }
func (s *storeImpl) AddedBy() uuid.UUID      { return s.addedBy }
func (s *storeImpl) CreatedAt() time.Time    { return s.createdAt }
func (s *storeImpl) UpdatedAt() time.Time    { return s.updatedAt }
