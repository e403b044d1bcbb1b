package importing

import "sort"

// Selection tracks which valid rows the operator chose to import. New batches
// start fully selected; the operator toggles individual rows or flips the
// whole set. Pure membership state over row indexes. The validation endpoint
// returns the full classified set and the commit endpoint accepts an explicit
// subset, so clients hold this state between the two calls.
type Selection struct {
	size     int
	excluded map[int]struct{}
}

func NewSelection(size int) *Selection {
	return &Selection{size: size, excluded: make(map[int]struct{})}
}

func (s *Selection) Size() int {
	return s.size
}

func (s *Selection) Selected(i int) bool {
	if i < 0 || i >= s.size {
		return false
	}
	_, excluded := s.excluded[i]
	return !excluded
}

func (s *Selection) Toggle(i int) {
	if i < 0 || i >= s.size {
		return
	}
	if _, excluded := s.excluded[i]; excluded {
		delete(s.excluded, i)
	} else {
		s.excluded[i] = struct{}{}
	}
}

func (s *Selection) SelectAll() {
	s.excluded = make(map[int]struct{})
}

func (s *Selection) SelectNone() {
	for i := 0; i < s.size; i++ {
		s.excluded[i] = struct{}{}
	}
}

func (s *Selection) Count() int {
	return s.size - len(s.excluded)
}

// Chosen returns the selected row indexes in ascending order.
func (s *Selection) Chosen() []int {
	chosen := make([]int, 0, s.Count())
	for i := 0; i < s.size; i++ {
		if s.Selected(i) {
			chosen = append(chosen, i)
		}
	}
	sort.Ints(chosen)
	return chosen
}

// Apply filters items down to the chosen subset.
func Apply[T any](s *Selection, items []T) []T {
	chosen := make([]T, 0, s.Count())
	for _, i := range s.Chosen() {
		if i < len(items) {
			chosen = append(chosen, items[i])
		}
	}
	return chosen
}
