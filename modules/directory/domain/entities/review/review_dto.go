package review

import (
	"github.com/google/uuid"
)

// CreateDTO is the canonical importable shape of one review row. StoreID is
// resolved during validation (place id → persisted store) and carried through
// to commit by the client.
type CreateDTO struct {
	StoreID         uuid.UUID `json:"storeId" validate:"required"`
	PlaceID         string    `json:"storeExternalId" validate:"required"`
	ExternalID      string    `json:"reviewExternalId" validate:"required"`
	AuthorName      string    `json:"authorName,omitempty"`
	Text            string    `json:"reviewText,omitempty"`
	Rating          int       `json:"rating" validate:"min=0,max=5"`
	ReviewedAt      string    `json:"reviewDatetimeUtc" validate:"required"`
	OwnerAnswer     string    `json:"ownerAnswer,omitempty"`
	OwnerAnsweredAt string    `json:"ownerAnswerDatetimeUtc,omitempty"`
	Likes           int       `json:"likesCount"`
}

func (d *CreateDTO) ToEntity() Review {
	return New(
		d.StoreID,
		d.PlaceID,
		d.ExternalID,
		d.Rating,
		d.ReviewedAt,
		WithAuthorName(d.AuthorName),
		WithText(d.Text),
		WithOwnerAnswer(d.OwnerAnswer, d.OwnerAnsweredAt),
		WithLikes(d.Likes),
	)
}
