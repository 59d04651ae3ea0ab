package service

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"aeroxfer/internal/csvexport"
	"aeroxfer/internal/domain"
	"aeroxfer/internal/port"
	"aeroxfer/internal/table"
)

// Options carries the caller-supplied configuration for one processing run.
// Mappings and Selection are keyed by block label; a label absent from
// Selection means "all rows", a present empty slice means "no rows".
type Options struct {
	Project         *domain.Project
	Mappings        map[string]domain.MappingSpec
	Selection       domain.RowSelection
	OutputDir       string
	TimestampFormat string
	Overwrite       bool
}

// DefaultTimestampFormat is the Go layout used for output filenames when the
// caller does not configure one.
const DefaultTimestampFormat = "20060102_150405"

// timestampFormat returns the configured layout or the default.
func (o *Options) timestampFormat() string {
	if o.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return o.TimestampFormat
}

// project returns the configured project, never nil.
func (o *Options) project() *domain.Project {
	if o.Project == nil {
		return &domain.Project{}
	}
	return o.Project
}

// BlockProcessor validates one block's selected table, invokes the transfer
// calculator, and writes the output file. Every outcome is a ReportEntry;
// nothing a single block does can abort the file.
type BlockProcessor struct {
	factory port.CalculatorFactory
}

// NewBlockProcessor creates a BlockProcessor around a calculator factory.
func NewBlockProcessor(factory port.CalculatorFactory) *BlockProcessor {
	return &BlockProcessor{factory: factory}
}

// Process runs the validation chain and transfer for one block. tbl is the
// row-selected table; m is the resolved mapping; sourceFile is the path of
// the input file the block came from.
func (p *BlockProcessor) Process(tbl *domain.Table, m domain.Mapping, opts *Options, sourceFile string) domain.ReportEntry {
	entry := domain.ReportEntry{
		BlockLabel: tbl.Label,
		SourcePart: m.SourcePart,
		TargetPart: m.TargetPart,
	}
	project := opts.project()

	if project.IsEmpty() {
		entry.Status = domain.BlockStatusSkipped
		entry.Reason = domain.ReasonNoProjectData
		entry.Message = "project defines no source or target parts"
		return entry
	}

	if tbl.NumRows() == 0 {
		entry.Status = domain.BlockStatusSkipped
		entry.Reason = domain.ReasonNoRowsSelected
		entry.Message = fmt.Sprintf("no rows selected for block %q", tbl.Label)
		return entry
	}

	if project.SourceByName(m.SourcePart) == nil {
		entry.Status = domain.BlockStatusSkipped
		entry.Reason = domain.ReasonSourceMissing
		entry.Message = fmt.Sprintf("source part %q is not defined in the project", m.SourcePart)
		return entry
	}

	if m.TargetPart == "" || project.TargetByName(m.TargetPart) == nil {
		entry.Status = domain.BlockStatusSkipped
		if m.Explicit {
			entry.Reason = domain.ReasonTargetMissing
			entry.Message = fmt.Sprintf("mapped target part %q is not defined in the project", m.TargetPart)
		} else {
			entry.Reason = domain.ReasonTargetNotMapped
			entry.Message = fmt.Sprintf("no target part mapped for block %q", tbl.Label)
		}
		return entry
	}

	var missing []string
	for _, name := range table.RequiredColumns {
		if tbl.Column(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		entry.Status = domain.BlockStatusSkipped
		entry.Reason = domain.ReasonMissingColumns
		entry.Message = "missing required columns: " + strings.Join(missing, ", ")
		return entry
	}

	forces, moments, badCol := requiredMatrices(tbl)
	if badCol != "" {
		entry.Status = domain.BlockStatusFailed
		entry.Reason = domain.ReasonNumericConversion
		entry.Message = fmt.Sprintf("column %q could not be converted to numbers", badCol)
		return entry
	}

	result, err := p.transfer(project, m, forces, moments)
	if err != nil {
		entry.Status = domain.BlockStatusFailed
		entry.Reason = domain.ReasonProcessingFailed
		entry.Message = err.Error()
		return entry
	}

	out := appendResultColumns(tbl, m.TargetPart, result)
	stem := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	path := csvexport.OutputPath(opts.OutputDir, stem, tbl.Label, time.Now(), opts.timestampFormat(), opts.Overwrite)
	if err := csvexport.WriteFile(path, out); err != nil {
		entry.Status = domain.BlockStatusFailed
		entry.Reason = domain.ReasonProcessingFailed
		entry.Message = err.Error()
		return entry
	}

	entry.Status = domain.BlockStatusSuccess
	entry.OutputPath = path
	return entry
}

// transfer builds the calculator and runs it, converting a panicking
// calculator into an error: external transform failures stay local to the
// block.
func (p *BlockProcessor) transfer(project *domain.Project, m domain.Mapping, forces, moments *mat.Dense) (result *port.TransferResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("transfer panicked: %v", r)
		}
	}()

	calc, err := p.factory(project, m.SourcePart, m.TargetPart)
	if err != nil {
		return nil, fmt.Errorf("building calculator: %w", err)
	}
	return calc.Process(forces, moments)
}

// requiredMatrices assembles the N×3 force (Cx, Cy, Cz/FN) and moment
// (CMx, CMy, CMz) matrices. Null cells inside an otherwise numeric column
// become NaN. Returns the name of the first wholly non-numeric required
// column, if any.
func requiredMatrices(tbl *domain.Table) (forces, moments *mat.Dense, badCol string) {
	n := tbl.NumRows()
	forces = mat.NewDense(n, 3, nil)
	moments = mat.NewDense(n, 3, nil)

	fill := func(dst *mat.Dense, k int, name string) bool {
		col := tbl.Column(name)
		if !col.Numeric {
			badCol = name
			return false
		}
		for i := 0; i < n; i++ {
			v := math.NaN()
			if col.Valid[i] {
				v = col.Values[i]
			}
			dst.Set(i, k, v)
		}
		return true
	}

	forceCols := []string{table.ColCx, table.ColCy, table.ColCzFN}
	momentCols := []string{table.ColCMx, table.ColCMy, table.ColCMz}
	for k := 0; k < 3; k++ {
		if !fill(forces, k, forceCols[k]) {
			return nil, nil, badCol
		}
		if !fill(moments, k, momentCols[k]) {
			return nil, nil, badCol
		}
	}
	return forces, moments, ""
}

// appendResultColumns copies the selected table and appends the six
// target-frame coefficient columns from the transfer result, suffixed with
// the target part name.
func appendResultColumns(tbl *domain.Table, targetPart string, result *port.TransferResult) *domain.Table {
	n := tbl.NumRows()
	out := &domain.Table{Label: tbl.Label}
	out.Columns = append(out.Columns, tbl.Columns...)

	add := func(name string, src *mat.Dense, k int) {
		col := domain.Column{
			Name:    fmt.Sprintf("%s@%s", name, targetPart),
			Text:    make([]string, n),
			Values:  make([]float64, n),
			Valid:   make([]bool, n),
			Numeric: true,
		}
		for i := 0; i < n; i++ {
			v := src.At(i, k)
			col.Values[i] = v
			col.Valid[i] = !math.IsNaN(v)
			col.Text[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		out.Columns = append(out.Columns, col)
	}

	add(table.ColCx, result.CoeffForce, 0)
	add(table.ColCy, result.CoeffForce, 1)
	add(table.ColCzFN, result.CoeffForce, 2)
	add(table.ColCMx, result.CoeffMoment, 0)
	add(table.ColCMy, result.CoeffMoment, 1)
	add(table.ColCMz, result.CoeffMoment, 2)
	return out
}
