package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"media_explorer/internal/config"
	"media_explorer/internal/publisher"
	"media_explorer/internal/service"
	"media_explorer/internal/source/freesound"
	"media_explorer/internal/source/nasa"
	"media_explorer/internal/state"
)

// app is the composition root shared by every subcommand.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *state.Store
	explorer *service.ExplorerService
	sounds   *freesound.Client
	closers  []func()
}

type rootOptions struct {
	configPath string
	width      int
	height     int
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Search NASA's image archive and Freesound's audio archive",
		Long: `Explorer searches NASA's public image archive and Freesound's audio archive.

Image results are kept in shared state that other processes can follow
through RabbitMQ when a broker is configured.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to config file")
	cmd.PersistentFlags().IntVar(&opts.width, "width", 0, "width of the main container (0 leaves it unset)")
	cmd.PersistentFlags().IntVar(&opts.height, "height", 0, "height of the main container (0 leaves it unset)")

	cmd.AddCommand(newImagesCmd(a))
	cmd.AddCommand(newSoundsCmd(a))
	cmd.AddCommand(newWatchCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = setupLogger(cfg.LogLevel, cmd.ErrOrStderr())

	images := nasa.New(nasa.Config{
		BaseURL:  cfg.Images.BaseURL,
		ProxyURL: cfg.Images.ProxyURL(),
		Timeout:  cfg.Images.Timeout,
	}, a.logger)

	a.sounds = freesound.New(freesound.Config{
		BaseURL:      cfg.Sounds.BaseURL,
		APIKey:       cfg.Sounds.APIKey,
		SearchPrefix: cfg.Sounds.SearchPrefix,
		Timeout:      cfg.Sounds.Timeout,
	}, a.logger)

	a.store = state.NewStore()
	a.explorer = service.NewExplorerService(images, a.sounds, a.store, a.logger, cfg.Sounds)
	a.closers = append(a.closers, a.explorer.Close)

	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return err
		}
		detach := publisher.Bridge(contextOf(cmd), a.store, rabbitMQ, a.logger)
		a.closers = append(a.closers, detach, func() { _ = rabbitMQ.Close() })
	}

	a.explorer.SetViewport(optionalInt(opts.width), optionalInt(opts.height))

	return nil
}

// close runs the closers in reverse order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// loadConfig falls back to defaults when the default config file is absent.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return config.Parse([]byte("{}"))
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

func optionalInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// contextOf returns the command context, which fang cancels on a signal.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
