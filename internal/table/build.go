package table

import (
	"strconv"

	"aeroxfer/internal/domain"
)

// Build converts a finalized block into a typed table. Column names come
// from the normalizer; each cell is numerically coerced where possible. A
// cell that fails to parse becomes a null (Valid=false), never an error. A
// column where no cell parses at all stays a plain string column.
func Build(b *domain.Block) *domain.Table {
	names := NormalizeHeader(b.HeaderTokens)
	cols := make([]domain.Column, len(names))

	for j, name := range names {
		col := domain.Column{
			Name:   name,
			Text:   make([]string, len(b.Rows)),
			Values: make([]float64, len(b.Rows)),
			Valid:  make([]bool, len(b.Rows)),
		}
		for i, row := range b.Rows {
			cell := row[j]
			col.Text[i] = cell
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				col.Values[i] = v
				col.Valid[i] = true
				col.Numeric = true
			}
		}
		cols[j] = col
	}

	return &domain.Table{Label: b.Label, Columns: cols}
}
