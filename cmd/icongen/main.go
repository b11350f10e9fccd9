package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"icongen/pkg/config"
	"icongen/pkg/generator"
	"icongen/pkg/icns"
	"icongen/pkg/logger"
	"icongen/pkg/tray"
	"icongen/pkg/watcher"
)

// Version information (set by GoReleaser during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// setup loads configuration and wires the generator for every command
func setup(cmd *cli.Command) (*config.Config, *slog.Logger, *generator.Generator, error) {
	configPath := cmd.String("config")

	cfg, err := config.Load(configPath, cmd.String("root"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if cmd.Bool("verbose") {
		level = "debug"
	}
	log := logger.Setup(os.Stdout, level, cfg.Logging.Format)

	log.Info("icongen",
		"version", version,
		"commit", commit,
		"built", date)
	if configPath != "" {
		log.Info("Configuration loaded", "config_file", configPath)
	}
	log.Debug("Using root", "path", cfg.Paths.Root)

	compiler, err := icns.New(cfg.ICNS.Compiler, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, generator.New(*cfg, compiler, log), nil
}

func generate(ctx context.Context, cmd *cli.Command) error {
	_, _, gen, err := setup(cmd)
	if err != nil {
		return err
	}
	return gen.Run(ctx)
}

func main() {
	app := &cli.Command{
		Name:    "icongen",
		Usage:   "Generate desktop, macOS, Windows, Android, iOS and tray icons from the master images",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file (built-in defaults when omitted)",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Repository root that relative paths resolve against",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every generated file",
			},
		},
		Action: generate,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Run the full generation pipeline once (default)",
				Action: generate,
			},
			{
				Name:  "watch",
				Usage: "Regenerate whenever a master image changes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, log, gen, err := setup(cmd)
					if err != nil {
						return err
					}

					if err := gen.Run(ctx); err != nil {
						log.Error("Initial generation failed", "error", err)
					}

					w, err := watcher.New(
						[]string{cfg.Paths.MainIcon, cfg.Paths.MenuBarIcon},
						time.Duration(cfg.Watch.DebounceMS)*time.Millisecond,
						gen.Run,
						log,
					)
					if err != nil {
						return err
					}

					log.Info("Watching master images, press Ctrl+C to stop")
					return w.Run(ctx)
				},
			},
			{
				Name:  "preview-tray",
				Usage: "Show the generated menu bar icon in the system tray",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, log, gen, err := setup(cmd)
					if err != nil {
						return err
					}

					if _, err := os.Stat(gen.MenuBarIconPath()); err != nil {
						if err := gen.GenerateMenuBarIcon(ctx); err != nil {
							return err
						}
					}

					tray.Run(tray.Config{Controller: gen, Logger: log})
					return nil
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
