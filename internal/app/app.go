package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/atompoint/storefront/internal/config"
	"github.com/atompoint/storefront/internal/handlers"
	"github.com/atompoint/storefront/internal/pg"
	"github.com/atompoint/storefront/internal/repo"
	"github.com/atompoint/storefront/internal/repo/memstore"
	"github.com/atompoint/storefront/internal/service"
	"github.com/atompoint/storefront/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.cfg = cfg
	a.repo = buildRepositories(ctx, cfg)
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildRepositories connects to Postgres when a DSN is configured and the
// database answers; every failure falls back to the seeded in-memory store so
// the API stays up.
func buildRepositories(ctx context.Context, cfg *config.Config) *repo.Repositories {
	if cfg.Database == "" {
		zap.L().Warn("no database DSN configured, using in-memory store")
		return repo.NewMemory(memstore.New())
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Warn("database unreachable, using in-memory store", zap.Error(err))
		return repo.NewMemory(memstore.New())
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Warn("migrations failed, using in-memory store", zap.Error(err))
		pool.Close()
		return repo.NewMemory(memstore.New())
	}

	zap.L().Info("connected to postgres")
	return repo.New(pg.New(pool), pg.NewTXManager(pool))
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

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
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

	return appErr
}
