package city

import (
	"time"

	"github.com/google/uuid"
)

// City is a launch market of the directory. Stores always belong to a city.
type City interface {
	ID() uuid.UUID
	Name() string
	Slug() string
	State() string
	Active() bool
	CreatedAt() time.Time
}

type Option func(c *cityImpl)

func WithID(id uuid.UUID) Option {
	return func(c *cityImpl) {
		c.id = id
	}
}

func WithActive(active bool) Option {
	return func(c *cityImpl) {
		c.active = active
	}
}

func WithCreatedAt(t time.Time) Option {
	return func(c *cityImpl) {
		c.createdAt = t
	}
}

func New(name, slug, state string, opts ...Option) City {
	c := &cityImpl{
		id:        uuid.New(),
		name:      name,
		slug:      slug,
		state:     state,
		active:    true,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type cityImpl struct {
	id        uuid.UUID
	name      string
	slug      string
	state     string
	active    bool
	createdAt time.Time
}

func (c *cityImpl) ID() uuid.UUID        { return c.id }
func (c *cityImpl) Name() string         { return c.name }
func (c *cityImpl) Slug() string         { return c.slug }
func (c *cityImpl) State() string        { return c.state }
func (c *cityImpl) Active() bool         { return c.active }
func (c *cityImpl) CreatedAt() time.Time { return c.createdAt }
