package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hmelikyan/wanderbot/internal/action"
	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/config"
	"github.com/hmelikyan/wanderbot/internal/crafting"
	"github.com/hmelikyan/wanderbot/internal/database"
	"github.com/hmelikyan/wanderbot/internal/database/postgres"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/handler"
	"github.com/hmelikyan/wanderbot/internal/i18n"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/market"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/mob"
	"github.com/hmelikyan/wanderbot/internal/notify"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/scheduler"
	"github.com/hmelikyan/wanderbot/internal/server"
	"github.com/hmelikyan/wanderbot/internal/sweep"
	"github.com/hmelikyan/wanderbot/internal/utils"
	"github.com/hmelikyan/wanderbot/internal/weather"
	"github.com/hmelikyan/wanderbot/internal/worker"
)

const (
	version = "1.0.0"

	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
	deadLetterPath  = "data/deadletter.jsonl"
	eventMaxRetries = 3
	eventRetryDelay = time.Second
	sweepQueueSize  = 16
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "wanderbot",
		Version:     version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == "dev",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, pool, err := buildRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), 0o755); err != nil {
		return err
	}
	dlw, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return err
	}
	defer dlw.Close()

	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: eventMaxRetries,
		RetryDelay: eventRetryDelay,
		DeadLetter: dlw,
	})

	cat := catalog.New()
	rng := utils.NewTimeSeededRand()
	locks := concurrency.NewLockManager()
	tr := i18n.NewTranslator()

	players := player.NewService(repo, cat, publisher, rng)

	var wp weather.Provider = weather.Static{Report: weather.Report{Condition: weather.Unknown}}
	if cfg.WeatherEnabled {
		wp = weather.NewOpenMeteo(cfg.WeatherLat, cfg.WeatherLon)
	}

	actions := action.NewService(repo, players, cat, wp, publisher, rng)
	crafts := crafting.NewService(repo, players, cat, rng)
	mobs := mob.NewService(repo, players, cat, rng)
	markets := market.NewService(repo, players, cat, locks)

	messenger := notify.SlogMessenger{}
	notifier := notify.NewNotifier(messenger, tr, players.Lang)
	notifier.Register(bus)
	metrics.NewEventCollector().Register(bus)

	workers := worker.NewPool(cfg.WorkerCount, sweepQueueSize)
	workers.Start()
	defer workers.Stop()

	sched := scheduler.New(workers)
	sched.Schedule(cfg.SweepInterval, sweep.NewDecayJob(repo, players, locks, publisher, rng))
	sched.Schedule(cfg.SweepInterval, sweep.NewNotifyJob(repo, locks, messenger, tr))
	defer sched.Stop()

	var pinger handler.Pinger
	if pool != nil {
		pinger = pool
	}
	srv := server.New(cfg.Port, server.Services{
		Players: players,
		Actions: actions,
		Crafts:  crafts,
		Mobs:    mobs,
		Markets: markets,
		Locks:   locks,
		Readyz:  pinger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// buildRepository selects the storage backend. Postgres runs the embedded
// migrations before the pool opens.
func buildRepository(ctx context.Context, cfg *config.Config) (repository.Player, *pgxpool.Pool, error) {
	if cfg.Storage == "memory" {
		slog.Info("using in-memory player repository")
		return repository.NewMemory(), nil, nil
	}

	if err := database.Migrate(cfg.DBConnString()); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("using postgres player repository", "host", cfg.DBHost)
	return postgres.NewPlayerRepository(pool), pool, nil
}
