// Package importing holds the pure pieces of the spreadsheet import pipeline:
// header alias resolution, row classification and operator selection state.
// Nothing here touches the database.
package importing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/refilllocal/directory/pkg/spreadsheet"
)

// FieldMap declares, per canonical field, the spreadsheet headers accepted for
// it. Resolution is case-insensitive and independent per field: each field
// binds to the first of its aliases present in the header row.
type FieldMap struct {
	// Aliases maps canonical field name to acceptable headers, in priority order.
	Aliases map[string][]string
	// Required lists canonical fields that must resolve for the batch to proceed.
	Required []string
}

// Resolution maps canonical field name to the header it bound to.
type Resolution map[string]string

// MissingColumnsError reports every unresolved required field at once.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Resolve binds canonical fields to the given header row. When any required
// field has no matching alias, it fails with a MissingColumnsError naming all
// of them; optional fields simply stay unbound.
func (m FieldMap) Resolve(header []string) (Resolution, error) {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}

	resolution := make(Resolution, len(m.Aliases))
	for field, aliases := range m.Aliases {
		for _, alias := range aliases {
			alias = strings.ToLower(alias)
			if _, ok := present[alias]; ok {
				resolution[field] = alias
				break
			}
		}
	}

	var missing []string
	for _, field := range m.Required {
		if _, ok := resolution[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}
	return resolution, nil
}

// Value reads the cell the given canonical field resolved to, or "" when the
// field stayed unbound.
func (r Resolution) Value(row spreadsheet.Row, field string) string {
	header, ok := r[field]
	if !ok {
		return ""
	}
	return row[header]
}
