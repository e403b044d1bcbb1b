package importing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/refilllocal/directory/modules/directory/importing"
)

func TestSelection(t *testing.T) {
	t.Run("starts fully selected", func(t *testing.T) {
		s := importing.NewSelection(3)
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, []int{0, 1, 2}, s.Chosen())
	})

	t.Run("toggle flips one row", func(t *testing.T) {
		s := importing.NewSelection(3)
		s.Toggle(1)
		assert.False(t, s.Selected(1))
		assert.Equal(t, []int{0, 2}, s.Chosen())
		s.Toggle(1)
		assert.True(t, s.Selected(1))
		assert.Equal(t, 3, s.Count())
	})

	t.Run("select none then all", func(t *testing.T) {
		s := importing.NewSelection(4)
		s.SelectNone()
		assert.Zero(t, s.Count())
		assert.Empty(t, s.Chosen())
		s.SelectAll()
		assert.Equal(t, 4, s.Count())
	})

	t.Run("out of range indexes are ignored", func(t *testing.T) {
		s := importing.NewSelection(2)
		s.Toggle(-1)
		s.Toggle(5)
		assert.Equal(t, 2, s.Count())
		assert.False(t, s.Selected(5))
	})
}

func TestApply(t *testing.T) {
	s := importing.NewSelection(3)
	s.Toggle(0)
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"b", "c"}, importing.Apply(s, items))

	s.SelectNone()
	assert.Empty(t, importing.Apply(s, items))
}
