package service

import (
	"context"
	"log"
	"sync"

	"aeroxfer/internal/domain"
)

// BatchConfig holds settings for the batch runner.
type BatchConfig struct {
	Concurrency int
}

// BatchRunner processes several files concurrently. Files are independent;
// cancellation is checked at file boundaries (and per block inside
// FileService), never mid-row.
type BatchRunner struct {
	files *FileService
	cfg   BatchConfig
	wg    sync.WaitGroup
}

// NewBatchRunner creates a BatchRunner over a FileService.
func NewBatchRunner(files *FileService, cfg BatchConfig) *BatchRunner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &BatchRunner{files: files, cfg: cfg}
}

// Run processes all paths and returns one report per file, in input order.
// A file that could not be read at all yields a nil report slot and is
// logged; block-level skips and failures live inside each report. Run blocks
// until all in-flight files have finished, including after cancellation.
func (r *BatchRunner) Run(ctx context.Context, paths []string, opts *Options) []*domain.FileReport {
	reports := make([]*domain.FileReport, len(paths))
	sem := make(chan struct{}, r.cfg.Concurrency)

	log.Printf("service.BatchRunner: started (%d files, concurrency=%d)", len(paths), r.cfg.Concurrency)

	for i, path := range paths {
		if ctx.Err() != nil {
			log.Printf("service.BatchRunner: canceled, %d files not dispatched", len(paths)-i)
			break
		}

		sem <- struct{}{} // acquire
		r.wg.Add(1)
		go func(i int, path string) {
			defer r.wg.Done()
			defer func() { <-sem }() // release

			report, err := r.files.ProcessFile(ctx, path, opts)
			if err != nil {
				log.Printf("service.BatchRunner: %s: %v", path, err)
			}
			reports[i] = report
		}(i, path)
	}

	r.wg.Wait()
	log.Printf("service.BatchRunner: done")
	return reports
}
