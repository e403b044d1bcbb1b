package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one imported customer review of a store. ExternalID (the source
// system's review id) is the deduplication key.
type Review interface {
	ID() uuid.UUID
	StoreID() uuid.UUID
	PlaceID() string
	ExternalID() string
	AuthorName() string
	Text() string
	Rating() int
	ReviewedAt() string
	OwnerAnswer() string
	OwnerAnsweredAt() string
	Likes() int
	CreatedAt() time.Time
}

type Option func(r *reviewImpl)

func WithID(id uuid.UUID) Option {
	return func(r *reviewImpl) {
		r.id = id
	}
}

func WithAuthorName(name string) Option {
	return func(r *reviewImpl) {
		r.authorName = name
	}
}

func WithText(text string) Option {
	return func(r *reviewImpl) {
		r.text = text
	}
}

func WithOwnerAnswer(answer, answeredAt string) Option {
	return func(r *reviewImpl) {
		r.ownerAnswer = answer
		r.ownerAnsweredAt = answeredAt
	}
}

func WithLikes(likes int) Option {
	return func(r *reviewImpl) {
		r.likes = likes
	}
}

func WithCreatedAt(t time.Time) Option {
	return func(r *reviewImpl) {
		r.createdAt = t
	}
}

func New(
	storeID uuid.UUID,
	placeID, externalID string,
	rating int,
	reviewedAt string,
	opts ...Option,
) Review {
	r := &reviewImpl{
		id:         uuid.New(),
		storeID:    storeID,
		placeID:    placeID,
		externalID: externalID,
		rating:     rating,
		reviewedAt: reviewedAt,
		createdAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type reviewImpl struct {
	id              uuid.UUID
	storeID         uuid.UUID
	placeID         string
	externalID      string
	authorName      string
	text            string
	rating          int
	reviewedAt      string
	ownerAnswer     string
	ownerAnsweredAt string
	likes           int
	createdAt       time.Time
}

func (r *reviewImpl) ID() uuid.UUID           { return r.id }
func (r *reviewImpl) StoreID() uuid.UUID      { return r.storeID }
func (r *reviewImpl) PlaceID() string         { return r.placeID }
func (r *reviewImpl) ExternalID() string      { return r.externalID }
func (r *reviewImpl) AuthorName() string      { return r.authorName }
func (r *reviewImpl) Text() string            { return r.text }
func (r *reviewImpl) Rating() int             { return r.rating }
func (r *reviewImpl) ReviewedAt() string      { return r.reviewedAt }
func (r *reviewImpl) OwnerAnswer() string     { return r.ownerAnswer }
func (r *reviewImpl) OwnerAnsweredAt() string { return r.ownerAnsweredAt }
func (r *reviewImpl) Likes() int              { return r.likes }
func (r *reviewImpl) CreatedAt() time.Time    { return r.createdAt }
