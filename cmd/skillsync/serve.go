package main

import (
	"context"
	"fmt"

	"github.com/jonathan/skillsync/internal/apiclient"
	"github.com/jonathan/skillsync/internal/config"
	"github.com/jonathan/skillsync/internal/drafts"
	"github.com/jonathan/skillsync/internal/logging"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/web"
	"github.com/jonathan/skillsync/internal/web/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	port       int
	configFile string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web front-end",
		Long: `Start the HTTP server that renders the SkillSync pages. Settings come from the
environment (and .env); --config names a JSON file whose values act as defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 0, "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a JSON config file")
	return cmd
}

// loadConfig merges, lowest first: built-in defaults, the config file, the environment.
func loadConfig(path string) (*config.Config, error) {
	defaults := config.DefaultConfig()
	if path != "" {
		file, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		defaults = file.MergeWithDefaults(defaults)
	}
	return config.FromEnvWithDefaults(defaults)
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = opts.port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sessionCfg, err := config.NewSessionConfig()
	if err != nil {
		return err
	}
	imageCfg, err := config.NewImageConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := openDrafts(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	api := apiclient.New(apiclient.Options{
		BaseURL:       cfg.APIBase(),
		OnboardingURL: cfg.OnboardingBase(),
		Timeout:       cfg.RequestTimeout(),
		Logger:        logger,
	})

	srv, err := web.New(cfg, web.Deps{
		Logger:      logger,
		Sessions:    session.NewStore(sessionCfg),
		Drafts:      store,
		Images:      imageCfg,
		API:         api,
		RateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// openDrafts picks Redis when REDIS_ADDR is set, else an in-memory store.
func openDrafts(ctx context.Context, cfg *config.Config, logger *zap.Logger) (drafts.Store, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("keeping drafts in memory")
		return drafts.NewMemoryStore(cfg.DraftTTL()), func() {}, nil
	}
	store, err := drafts.NewRedisStore(ctx, drafts.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.DraftTTL(),
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("keeping drafts in redis", zap.String("addr", cfg.RedisAddr))
	return store, func() { _ = store.Close() }, nil
}
