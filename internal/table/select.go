package table

import (
	"sort"

	"aeroxfer/internal/domain"
)

// Restrict returns a copy of the table containing only the rows at the given
// indices. Indices are deduplicated, sorted ascending, and intersected with
// the valid range; out-of-range indices are dropped. An empty selection
// yields a zero-row table. Callers that want "all rows" must not call
// Restrict at all: absence of a selection and an empty selection are
// different things.
func Restrict(t *domain.Table, indices []int) *domain.Table {
	n := t.NumRows()
	keep := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < n && !seen[idx] {
			keep = append(keep, idx)
			seen[idx] = true
		}
	}
	sort.Ints(keep)

	cols := make([]domain.Column, len(t.Columns))
	for j := range t.Columns {
		src := &t.Columns[j]
		col := domain.Column{
			Name:    src.Name,
			Text:    make([]string, len(keep)),
			Values:  make([]float64, len(keep)),
			Valid:   make([]bool, len(keep)),
			Numeric: src.Numeric,
		}
		for i, idx := range keep {
			col.Text[i] = src.Text[idx]
			col.Values[i] = src.Values[idx]
			col.Valid[i] = src.Valid[idx]
		}
		cols[j] = col
	}

	return &domain.Table{Label: t.Label, Columns: cols}
}
