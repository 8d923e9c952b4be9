package main

// @title Uptime Report API
// @version 1.0
// @description Heartbeat analysis and uptime reporting for Uptime Kuma databases
// @host localhost:8080
// @BasePath /api

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"uptime-report/internal/application"
	"uptime-report/internal/config"
	"uptime-report/internal/domain"
	"uptime-report/internal/infrastructure/kumadb"
	httpserver "uptime-report/internal/interfaces/http"
	"uptime-report/internal/interfaces/render"
	"uptime-report/internal/logging"

	_ "uptime-report/docs" // Swagger docs
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config.yaml", "Configuration file path")
	dbPath := flag.String("db", "", "Uptime Kuma SQLite database path (overrides config)")
	periodName := flag.String("period", "month", "Report period: day, week, month, quarter, year")
	monitorList := flag.String("monitors", "", "Comma-separated monitor IDs (empty means all)")
	outDir := flag.String("out", "", "Report output directory (overrides config)")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of writing a report")
	addr := flag.String("addr", "", "HTTP server address (overrides config)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("Uptime Report\n")
		fmt.Printf("  Version:    %s\n", Version)
		fmt.Printf("  Commit:     %s\n", Commit)
		fmt.Printf("  Build time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	logger := zap.NewNop()
	if cfg.LogDir != "" {
		logger, err = logging.NewLogger(cfg.LogDir)
		if err != nil {
			log.Fatalf("Failed to initialize logging: %v", err)
		}
		defer logger.Sync()
	}
	logger.Info("starting uptime-report",
		zap.String("version", Version),
		zap.String("commit", Commit))

	// Open the Uptime Kuma database
	db, err := kumadb.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	service := application.NewReportService(db, logger)

	if *serve {
		runServer(cfg, service, loc)
		return
	}

	if err := writeReport(cfg, service, loc, *periodName, *monitorList); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

// writeReport renders one report file into the output directory.
func writeReport(cfg *config.Config, service *application.ReportService, loc *time.Location, periodName, monitorList string) error {
	period, err := domain.NewPeriod(periodName)
	if err != nil {
		return err
	}

	ids, err := parseMonitorIDs(monitorList)
	if err != nil {
		return err
	}

	now := time.Now()
	reports, err := service.GenerateReport(context.Background(), ids, period, loc, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, render.Filename(period, now))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	renderer := render.New(cfg.Company.Name, cfg.Company.EnglishName)
	if err := renderer.Render(f, period, reports, now); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	log.Printf("Report written to %s (%d monitors)", path, len(reports))
	return nil
}

// runServer serves the report API until SIGINT or SIGTERM.
func runServer(cfg *config.Config, service *application.ReportService, loc *time.Location) {
	server := httpserver.NewServer(service, loc)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

// parseMonitorIDs splits a comma separated ID list, tolerating blanks.
func parseMonitorIDs(list string) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid monitor ID %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
