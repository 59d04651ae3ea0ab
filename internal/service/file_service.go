package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"aeroxfer/internal/domain"
	"aeroxfer/internal/mapping"
	"aeroxfer/internal/port"
	"aeroxfer/internal/scan"
	"aeroxfer/internal/table"
)

// FileService orchestrates one file: extraction, then per block mapping
// resolution, row selection, and processing. One block's failure or skip
// never stops the remaining blocks.
type FileService struct {
	processor *BlockProcessor
}

// NewFileService creates a FileService around a calculator factory.
func NewFileService(factory port.CalculatorFactory) *FileService {
	return &FileService{processor: NewBlockProcessor(factory)}
}

// ListLabels extracts the file and returns the block labels in order.
func (s *FileService) ListLabels(path string) ([]string, error) {
	blocks, err := s.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return scan.Labels(blocks), nil
}

// ParseFile reads and extracts the file's blocks. Only I/O and decoding
// failures are errors; a file with no recognizable blocks parses to an
// empty slice.
func (s *FileService) ParseFile(path string) ([]domain.Block, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return scan.ExtractBlocks(lines), nil
}

// ProcessFile runs the whole pipeline over one file and returns the ordered
// per-block report. Cancellation is checked at block boundaries; a canceled
// context returns the report accumulated so far along with ctx.Err().
func (s *FileService) ProcessFile(ctx context.Context, path string, opts *Options) (*domain.FileReport, error) {
	report := &domain.FileReport{
		RunID:       uuid.New(),
		File:        path,
		ProcessedAt: time.Now(),
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	blocks, err := s.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		log.Printf("service.FileService: no blocks found in %s", path)
		return report, nil
	}

	resolver := mapping.NewResolver(opts.Mappings)
	sources := opts.project().SourceNames()
	targets := opts.project().TargetNames()

	for i := range blocks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		block := &blocks[i]
		tbl := table.Build(block)
		if sel, ok := opts.Selection[block.Label]; ok {
			tbl = table.Restrict(tbl, sel)
		}
		m := resolver.Resolve(block.Label, sources, targets)

		entry := s.processor.Process(tbl, m, opts, path)
		report.Entries = append(report.Entries, entry)
		if entry.Status == domain.BlockStatusSuccess {
			report.OutputPaths = append(report.OutputPaths, entry.OutputPath)
		} else {
			log.Printf("service.FileService: block %q %s (%s): %s",
				entry.BlockLabel, entry.Status, entry.Reason, entry.Message)
		}
	}

	sum := report.Summary()
	log.Printf("service.FileService: %s processed: %d blocks, %d success, %d skipped, %d failed",
		path, sum.Total, sum.Success, sum.Skipped, sum.Failed)
	return report, nil
}
