package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/config"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers"
	"github.com/GlebRadaev/gerenciaroi/internal/insights"
	"github.com/GlebRadaev/gerenciaroi/internal/meta"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
	"github.com/GlebRadaev/gerenciaroi/internal/repo"
	"github.com/GlebRadaev/gerenciaroi/internal/service"
	"github.com/GlebRadaev/gerenciaroi/pkg/clients"
	"github.com/GlebRadaev/gerenciaroi/pkg/geo"
	"github.com/GlebRadaev/gerenciaroi/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	metrics *metrics.Metrics
	sync    *insights.Service

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	httpClient := clients.NewHTTPClient()
	metaClient := meta.New(meta.Config{
		AppID:     cfg.MetaAppID,
		AppSecret: cfg.MetaAppSecret,
		GraphURL:  cfg.MetaGraphURL,
		DialogURL: cfg.MetaDialogURL,
	}, httpClient)
	if !metaClient.Configured() {
		zap.L().Warn("META_APP_ID / META_APP_SECRET not set, oauth exchange is disabled")
	}
	locator := geo.New(cfg.GeoURL, httpClient, a.geoCache(ctx, cfg))

	conn := pg.New(pool)
	a.cfg = cfg
	a.metrics = metrics.New()
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, a.metrics, metaClient, locator)
	a.api = handlers.New(a.srv, a.metrics)
	a.sync = insights.New(a.repo.CredentialRepo, a.repo.SpendRepo, metaClient, a.metrics, cfg.SyncInterval, cfg.Location())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSpendSync(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
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
		return nil, err
	}
	return dbpool, nil
}

// geoCache returns nil when redis is not configured or unreachable; lookups
// then go straight to the geo endpoint.
func (a *Application) geoCache(ctx context.Context, cfg *config.Config) geo.Cache {
	if cfg.RedisURL == "" {
		return nil
	}
	client, err := geo.Connect(ctx, cfg.RedisURL)
	if err != nil {
		zap.L().Warn("redis disabled", zap.Error(err))
		return nil
	}
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, geo cache disabled", zap.String("addr", cfg.RedisURL), zap.Error(err))
		client.Close()
		return nil
	}

	a.wg.Add(1)
	go func(c *redis.Client) {
		defer a.wg.Done()
		<-ctx.Done()
		c.Close()
	}(client)

	return geo.NewRedisCache(client)
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
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSpendSync(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sync.Start(ctx)
	}()
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
