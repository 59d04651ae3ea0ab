// Package report exports a batch run's per-block outcome records for
// spreadsheet review.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"aeroxfer/internal/csvexport"
	"aeroxfer/internal/domain"
)

// columns defines the report header row.
var columns = []string{
	"File",
	"Block Label",
	"Source Part",
	"Target Part",
	"Status",
	"Reason",
	"Message",
	"Output Path",
}

// WriteCSV writes all report entries as a BOM-prefixed CSV.
func WriteCSV(w io.Writer, reports []*domain.FileReport) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, fr := range reports {
		if fr == nil {
			continue
		}
		for i := range fr.Entries {
			if err := cw.Write(entryRow(fr.File, &fr.Entries[i])); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the report as an .xlsx workbook: one Report sheet with
// all entries plus a Summary sheet with per-file counts.
func WriteXLSX(path string, reports []*domain.FileReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, columns); err != nil {
		return err
	}
	rowNum := 2
	for _, fr := range reports {
		if fr == nil {
			continue
		}
		for i := range fr.Entries {
			if err := setRow(f, sheet, rowNum, entryRow(fr.File, &fr.Entries[i])); err != nil {
				return err
			}
			rowNum++
		}
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	if err := setRow(f, summary, 1, []string{"File", "Total", "Success", "Skipped", "Failed"}); err != nil {
		return err
	}
	rowNum = 2
	for _, fr := range reports {
		if fr == nil {
			continue
		}
		s := fr.Summary()
		row := []string{
			fr.File,
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Success),
			strconv.Itoa(s.Skipped),
			strconv.Itoa(s.Failed),
		}
		if err := setRow(f, summary, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func entryRow(file string, e *domain.ReportEntry) []string {
	return []string{
		file,
		e.BlockLabel,
		e.SourcePart,
		e.TargetPart,
		string(e.Status),
		string(e.Reason),
		e.Message,
		e.OutputPath,
	}
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
