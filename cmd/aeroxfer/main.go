// Command aeroxfer extracts labeled coefficient blocks from loosely
// structured text files and re-references them against a project's target
// parts, writing one CSV per successfully processed block.
// Usage: aeroxfer -project project.json [-mapping mapping.json] [-report report.csv] file...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"aeroxfer/internal/config"
	"aeroxfer/internal/domain"
	"aeroxfer/internal/report"
	"aeroxfer/internal/scan"
	"aeroxfer/internal/service"
	"aeroxfer/internal/transfer"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	projectPath := flag.String("project", "", "path to the project JSON file (source/target part definitions)")
	mappingPath := flag.String("mapping", "", "optional path to a label mapping JSON file")
	reportPath := flag.String("report", "", "optional path to write the run report (.csv or .xlsx)")
	labelsOnly := flag.Bool("labels", false, "list block labels and exit")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		return fmt.Errorf("no input files given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files := service.NewFileService(transfer.NewCalculator)

	if *labelsOnly {
		for _, path := range paths {
			labels, err := files.ListLabels(path)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", path, strings.Join(labels, ", "))
		}
		return nil
	}

	project, err := loadProject(*projectPath)
	if err != nil {
		return err
	}
	mappings, err := loadMappings(*mappingPath)
	if err != nil {
		return err
	}

	// Skip files that do not look like block-table text up front.
	var accepted []string
	for _, path := range paths {
		ok, err := scan.LooksLikeBlockFile(path, cfg.Detect.SniffLines)
		if err != nil {
			return err
		}
		if !ok {
			log.Printf("skipping %s: %v", path, domain.ErrNotBlockFile)
			continue
		}
		accepted = append(accepted, path)
	}

	opts := &service.Options{
		Project:         project,
		Mappings:        mappings,
		OutputDir:       cfg.Output.Dir,
		TimestampFormat: cfg.Output.TimestampFormat,
		Overwrite:       cfg.Output.Overwrite,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := service.NewBatchRunner(files, service.BatchConfig{Concurrency: cfg.Batch.Concurrency})
	reports := runner.Run(ctx, accepted, opts)

	if *reportPath != "" {
		if err := writeReport(*reportPath, reports); err != nil {
			return err
		}
	}

	failed := printSummary(reports)
	if failed > 0 {
		return fmt.Errorf("%d blocks failed", failed)
	}
	return nil
}

// loadProject reads the project JSON file. Project loading sits at the
// caller boundary; the pipeline itself only consumes the parsed structure.
func loadProject(path string) (*domain.Project, error) {
	if path == "" {
		return &domain.Project{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	project := &domain.Project{}
	if err := json.Unmarshal(data, project); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return project, nil
}

// loadMappings reads the optional label mapping JSON file
// (label -> {source_part, target_part}).
func loadMappings(path string) (map[string]domain.MappingSpec, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}
	mappings := map[string]domain.MappingSpec{}
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("parsing mapping file: %w", err)
	}
	return mappings, nil
}

// writeReport writes the run report as CSV or, for .xlsx paths, as a workbook.
func writeReport(path string, reports []*domain.FileReport) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return report.WriteXLSX(path, reports)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return report.WriteCSV(f, reports)
}

// printSummary prints per-file counts and every non-success entry, and
// returns the total number of failed blocks.
func printSummary(reports []*domain.FileReport) int {
	failed := 0
	for _, fr := range reports {
		if fr == nil {
			continue
		}
		sum := fr.Summary()
		failed += sum.Failed
		fmt.Printf("%s: %d blocks, %d success, %d skipped, %d failed\n",
			fr.File, sum.Total, sum.Success, sum.Skipped, sum.Failed)
		for _, e := range fr.Entries {
			if e.Status == domain.BlockStatusSuccess {
				fmt.Printf("  %s -> %s\n", e.BlockLabel, e.OutputPath)
			} else {
				fmt.Printf("  %s: %s (%s) %s\n", e.BlockLabel, e.Status, e.Reason, e.Message)
			}
		}
	}
	return failed
}
