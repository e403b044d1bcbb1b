package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an authenticated administrative user of the directory.
type Operator interface {
	ID() uuid.UUID
	Email() string
	Name() string
	IsAdmin() bool
	CreatedAt() time.Time
}

type Option func(o *op)

func WithID(id uuid.UUID) Option {
	return func(o *op) {
		o.id = id
	}
}

func WithAdmin(admin bool) Option {
	return func(o *op) {
		o.isAdmin = admin
	}
}

func WithCreatedAt(t time.Time) Option {
	return func(o *op) {
		o.createdAt = t
	}
}

func New(email, name string, opts ...Option) Operator {
	o := &op{
		id:        uuid.New(),
		email:     email,
		name:      name,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type op struct {
	id        uuid.UUID
	email     string
	name      string
	isAdmin   bool
	createdAt time.Time
}

func (o *op) ID() uuid.UUID        { return o.id }
func (o *op) Email() string        { return o.email }
func (o *op) Name() string         { return o.name }
func (o *op) IsAdmin() bool        { return o.isAdmin }
func (o *op) CreatedAt() time.Time { return o.createdAt }
