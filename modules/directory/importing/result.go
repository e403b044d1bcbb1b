package importing

import "github.com/refilllocal/directory/pkg/spreadsheet"

// RowError is a single rejected row with a human-readable reason. The original
// row data is kept so the operator can fix the source file.
type RowError struct {
	Row    spreadsheet.Row `json:"row"`
	Reason string          `json:"error"`
}

// DuplicateRow is a row whose dedup key matched an already-persisted record.
// Not an error: excluded from the default import set but shown to the operator.
type DuplicateRow struct {
	Row      spreadsheet.Row `json:"row"`
	Existing any             `json:"existing"`
}

// Result accumulates the classification of one import batch. Every input row
// lands in exactly one of Valid, Duplicates or Errors.
type Result[T any] struct {
	Total      int
	Valid      []T
	Duplicates []DuplicateRow
	Errors     []RowError
}

func NewResult[T any](total int) *Result[T] {
	return &Result[T]{Total: total}
}

func (r *Result[T]) Accept(record T) {
	r.Valid = append(r.Valid, record)
}

func (r *Result[T]) Flag(row spreadsheet.Row, existing any) {
	r.Duplicates = append(r.Duplicates, DuplicateRow{Row: row, Existing: existing})
}

func (r *Result[T]) Reject(row spreadsheet.Row, reason string) {
	r.Errors = append(r.Errors, RowError{Row: row, Reason: reason})
}

// Consistent reports whether every processed row was classified exactly once.
func (r *Result[T]) Consistent() bool {
	return len(r.Valid)+len(r.Duplicates)+len(r.Errors) == r.Total
}
