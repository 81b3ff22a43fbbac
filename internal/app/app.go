package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/config"
	"github.com/GlebRadaev/fuelfleet/internal/handlers"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	"github.com/GlebRadaev/fuelfleet/internal/repo"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
	"github.com/GlebRadaev/fuelfleet/internal/service"
	"github.com/GlebRadaev/fuelfleet/pkg/auth"
	"github.com/GlebRadaev/fuelfleet/pkg/lock"
	"github.com/GlebRadaev/fuelfleet/pkg/logger"
	"github.com/GlebRadaev/fuelfleet/pkg/metrics"
)

const metricsNamespace = "fuelfleet"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.start(ctx, config.New())
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	if _, err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := metrics.Create(metricsNamespace); err != nil {
		return fmt.Errorf("can't register metrics: %w", err)
	}
	policies, err := cfg.Policies()
	if err != nil {
		return fmt.Errorf("invalid balance policy: %w", err)
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	if err := a.initStorage(ctx, cfg); err != nil {
		return err
	}
	locker, err := a.initLocker(ctx, cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.srv = service.New(a.repo, service.Options{
		Policies:         policies,
		JWT:              jwtService,
		TokenTTL:         cfg.TokenTTL,
		Locker:           locker,
		ReconcileWorkers: cfg.ReconcileWorkers,
	})
	a.api = handlers.New(a.srv, jwtService)

	if err := a.startJobs(ctx); err != nil {
		return fmt.Errorf("can't schedule jobs: %w", err)
	}
	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.Bool("memory_store", cfg.InMemory()),
		zap.String("quota_policy", cfg.QuotaPolicy),
		zap.String("fuel_policy", cfg.FuelPolicy),
		zap.String("capacity_policy", cfg.CapacityPolicy),
	)
	return nil
}

func (a *Application) initStorage(ctx context.Context, cfg *config.Config) error {
	if cfg.InMemory() {
		zap.L().Warn("using the in-memory store, data is lost on exit")
		a.repo = repo.NewMemory(memrepo.New())
		return nil
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// initLocker picks the job lock backend. Without redis the lock only guards
// this process.
func (a *Application) initLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("REDIS_ADDR not set, job lock is process local")
		return lock.NewLocal(), nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		zap.L().Error("redis ping failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	return lock.NewRedis(rdb), nil
}

func (a *Application) startJobs(ctx context.Context) error {
	if err := a.srv.Jobs.Start(a.cfg.QuotaResetSchedule); err != nil {
		return err
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.srv.Jobs.Stop(sCtx)
	}()
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	return appErr
}
