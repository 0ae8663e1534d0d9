package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/logging"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/state"
	"github.com/five82/dexter/internal/ui"
)

// Options configure the dexter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dexter/prefs.toml
	Generation int    // zero uses default_generation from config
	ThemeName  string // empty uses the saved preference
}

// Services holds everything built from config: the pieces the TUI and the
// one-shot CLI commands share.
type Services struct {
	Config     config.Config
	Prefs      prefs.Prefs
	Logger     *zap.Logger
	Client     *pokeapi.Client
	Loader     *catalog.Loader
	Generation catalog.Generation
}

// Bootstrap loads config and prefs and wires the logger, client, and loader.
// Callers must Close the result.
func Bootstrap(opts Options) (*Services, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	genNumber := cfg.DefaultGeneration
	if opts.Generation != 0 {
		genNumber = opts.Generation
	}
	gen, err := catalog.GenerationByNumber(genNumber)
	if err != nil {
		return nil, fmt.Errorf("select generation: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := pokeapi.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	loader := catalog.NewLoader(client,
		catalog.WithLogger(logger),
		catalog.WithMaxInFlight(cfg.MaxInFlight))

	userPrefs := prefs.Load(opts.PrefsPath)
	if theme := strings.TrimSpace(opts.ThemeName); theme != "" {
		userPrefs.Theme = theme
	}

	logger.Info("dexter starting",
		zap.String("api_base", client.BaseURL()),
		zap.Duration("request_timeout", cfg.RequestTimeout),
		zap.Int("generation", gen.Number),
		zap.Int("max_in_flight", cfg.MaxInFlight))

	return &Services{
		Config:     cfg,
		Prefs:      userPrefs,
		Logger:     logger,
		Client:     client,
		Loader:     loader,
		Generation: gen,
	}, nil
}

// Close flushes the logger.
func (s *Services) Close() {
	if s == nil || s.Logger == nil {
		return
	}
	_ = s.Logger.Sync()
}

// Run boots the dexter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	svc, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctl := state.NewController(svc.Loader, svc.Generation, svc.Logger)
	defer ctl.Close()

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: ctl,
		ThemeName:  svc.Prefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Logger:     svc.Logger,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	svc.Logger.Info("dexter exiting")
	return nil
}
