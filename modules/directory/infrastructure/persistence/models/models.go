package models

import (
	"database/sql"
	"time"
)

type City struct {
	ID        string
	Name      string
	Slug      string
	State     string
	IsActive  bool
	CreatedAt time.Time
}

type Store struct {
	ID               string
	CityID           string
	Name             string
	Address          string
	Latitude         float64
	Longitude        float64
	GooglePlaceID    string
	WebsiteURL       sql.NullString
	Phone            sql.NullString
	Email            sql.NullString
	Description      string
	ImageURL         sql.NullString
	HoursOfOperation []byte
	IsVerified       bool
	AddedBy          sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type StoreReview struct {
	ID              string
	StoreID         string
	PlaceID         string
	ExternalID      string
	AuthorName      sql.NullString
	ReviewText      sql.NullString
	Rating          int
	ReviewedAt      string
	OwnerAnswer     sql.NullString
	OwnerAnsweredAt sql.NullString
	LikesCount      int
	CreatedAt       time.Time
}

type Operator struct {
	ID        string
	Email     string
	Name      string
	IsAdmin   bool
	APIToken  sql.NullString
	CreatedAt time.Time
}
