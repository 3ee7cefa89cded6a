package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/creziapro/site/internal/auth"
	"github.com/creziapro/site/internal/config"
	"github.com/creziapro/site/internal/httpserver"
	"github.com/creziapro/site/internal/httpserver/deps"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/redis"
	"github.com/creziapro/site/internal/seed"
	"github.com/creziapro/site/internal/storage"
	memorystorage "github.com/creziapro/site/internal/storage/memory"
	redisstorage "github.com/creziapro/site/internal/storage/redis"
	"github.com/creziapro/site/internal/store"
	"github.com/creziapro/site/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *store.Store
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var kv storage.KV
	var redisClient *goredis.Client

	switch cfg.Storage {
	case config.StorageMemory:
		loggerClient.Warn("using in-memory storage, content will not survive restarts")
		kv = memorystorage.New()
	default:
		// Initialize Redis early - fail fast if unavailable
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		kv = redisstorage.New(client)
	}

	// Initialize the record store and warm its in-memory mirror. A failed
	// warmup is not fatal: hydration retries lazily on first use.
	recordStore := store.New(kv, loggerClient)
	if err := recordStore.EnsureLoaded(context.Background()); err != nil {
		loggerClient.Warn("failed to hydrate store on startup, will retry on first request",
			logger.Error(err))
	}

	// Seed initial content into an empty store (if a seed file is configured)
	if cfg.SeedFile != "" {
		seedFile, err := seed.NewLoader(cfg.SeedFile).Load()
		if err != nil {
			loggerClient.Warn("failed to load seed file", logger.Error(err))
		} else if err := seed.Apply(context.Background(), recordStore, seedFile, loggerClient); err != nil {
			loggerClient.Warn("failed to apply seed content", logger.Error(err))
		}
	}

	var chatAgent *url.URL
	if cfg.ChatAgentURL != "" {
		parsed, err := url.Parse(cfg.ChatAgentURL)
		if err != nil {
			loggerClient.Errorf("Invalid chat agent URL %q: %v", cfg.ChatAgentURL, err)
			os.Exit(1)
		}
		chatAgent = parsed
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Store:           recordStore,
		KV:              kv,
		Credentials:     auth.NewStatic(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash),
		ChatAgent:       chatAgent,
		AllowedOrigins:  cfg.AllowedOrigins,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       recordStore,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting creziapro v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("creziapro %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ creziapro stopped cleanly")
	return nil
}
