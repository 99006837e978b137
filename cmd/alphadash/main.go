package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alphadash/internal/config"
	"alphadash/internal/logging"
	"alphadash/internal/telemetry"
	"alphadash/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvPath+")")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs only go to a file when DEBUG is set.
	logger := logging.Discard()
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "alphadash")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = logging.New(cfg.LogLevel, f)
	}

	ctx := context.Background()
	rec, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.Any("err", err))
		}
	}()

	app, err := ui.NewAppModel(cfg, logger, rec)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
