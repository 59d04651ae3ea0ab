// Command aeroxfer-server exposes the block pipeline over HTTP: upload a
// block-table text file with project options, get back the per-block report.
package main

import (
	"fmt"
	"log"
	"net/http"

	"aeroxfer/internal/config"
	"aeroxfer/internal/handler"
	"aeroxfer/internal/router"
	"aeroxfer/internal/service"
	"aeroxfer/internal/transfer"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	files := service.NewFileService(transfer.NewCalculator)

	processH := handler.NewProcessHandler(files, cfg)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, processH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	return srv.ListenAndServe()
}
