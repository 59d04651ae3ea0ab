package domain

import (
	"time"

	"github.com/google/uuid"
)

// Block is one labeled data table extracted from an unstructured input file.
// HeaderTokens holds the raw header exactly as read; every stored row has the
// same token count as HeaderTokens.
type Block struct {
	Label        string
	HeaderTokens []string
	Rows         [][]string
}

// Column is one typed column of a built table. Text always holds the original
// cell strings. When Numeric is true, Values/Valid hold the coerced cells;
// a false Valid entry marks a cell that did not parse (null).
type Column struct {
	Name    string
	Text    []string
	Values  []float64
	Valid   []bool
	Numeric bool
}

// Table is a block after column normalization and numeric coercion. Columns
// preserve header order. A table is owned by the block that produced it and
// is read-only downstream.
type Table struct {
	Label   string
	Columns []Column
}

// NumRows returns the row count of the table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Text)
}

// Column returns the column with the given canonical name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns the ordered column names.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}

// Part is one coordinate-system definition from the project configuration:
// a moment reference point plus the reference quantities used to
// non-dimensionalize coefficients.
type Part struct {
	Name      string     `json:"name"`
	RefPoint  [3]float64 `json:"ref_point"`
	RefArea   float64    `json:"ref_area"`
	RefLength float64    `json:"ref_length"`
}

// Project is the caller-supplied configuration: the available source and
// target part definitions. The core consumes it read-only.
type Project struct {
	Sources []Part `json:"sources"`
	Targets []Part `json:"targets"`
}

// SourceNames returns the ordered source part names.
func (p *Project) SourceNames() []string {
	names := make([]string, len(p.Sources))
	for i := range p.Sources {
		names[i] = p.Sources[i].Name
	}
	return names
}

// TargetNames returns the ordered target part names.
func (p *Project) TargetNames() []string {
	names := make([]string, len(p.Targets))
	for i := range p.Targets {
		names[i] = p.Targets[i].Name
	}
	return names
}

// SourceByName returns the source part with the given name, or nil.
func (p *Project) SourceByName(name string) *Part {
	for i := range p.Sources {
		if p.Sources[i].Name == name {
			return &p.Sources[i]
		}
	}
	return nil
}

// TargetByName returns the target part with the given name, or nil.
func (p *Project) TargetByName(name string) *Part {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i]
		}
	}
	return nil
}

// IsEmpty reports whether the project defines no parts at all.
func (p *Project) IsEmpty() bool {
	return p == nil || (len(p.Sources) == 0 && len(p.Targets) == 0)
}

// MappingSpec is one caller-supplied mapping entry for a block label. Either
// field may be empty; an empty field means "not specified by the caller".
type MappingSpec struct {
	SourcePart string `json:"source_part,omitempty"`
	TargetPart string `json:"target_part,omitempty"`
}

// Mapping is the resolved source/target association for one block. Explicit
// is true when the target came from a caller-supplied MappingSpec rather
// than from same-name or inference fallback.
type Mapping struct {
	SourcePart string
	TargetPart string
	Explicit   bool
}

// RowSelection maps block label to the row indices to retain. A label absent
// from the map means "all rows"; a present, empty slice means "no rows".
type RowSelection map[string][]int

// ReportEntry is the immutable per-block outcome record.
type ReportEntry struct {
	BlockLabel string      `json:"block_label"`
	SourcePart string      `json:"source_part"`
	TargetPart string      `json:"target_part"`
	Status     BlockStatus `json:"status"`
	Reason     SkipReason  `json:"reason,omitempty"`
	Message    string      `json:"message,omitempty"`
	OutputPath string      `json:"output_path,omitempty"`
}

// FileReport aggregates the per-block outcomes of one processed file.
type FileReport struct {
	RunID       uuid.UUID     `json:"run_id"`
	File        string        `json:"file"`
	Entries     []ReportEntry `json:"entries"`
	OutputPaths []string      `json:"output_paths"`
	ProcessedAt time.Time     `json:"processed_at"`
}

// Summary holds derived aggregate counts for a file report.
type Summary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Summary derives aggregate counts from the report entries.
func (r *FileReport) Summary() Summary {
	s := Summary{Total: len(r.Entries)}
	for i := range r.Entries {
		switch r.Entries[i].Status {
		case BlockStatusSuccess:
			s.Success++
		case BlockStatusSkipped:
			s.Skipped++
		case BlockStatusFailed:
			s.Failed++
		}
	}
	return s
}
