package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/service/questindex"
	"tarkov_market/internal/server"
	"tarkov_market/internal/worker"
	"tarkov_market/pkg/application/connectors"
	"tarkov_market/pkg/application/modules"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
	"tarkov_market/pkg/middlewarex"
	"tarkov_market/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает HTTP API, probe и metrics серверы и прогрев индекса квестов.
// Возвращается после отмены ctx и остановки всех модулей.
func Run(ctx context.Context, cfg config.Config) error {
	store, checks, closeStore, err := newQuestIndexStore(ctx, cfg)
	if err != nil {
		return err
	}

	defer closeStore(ctx)

	deps, err := NewDashboard(cfg, store)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(logger(ctx)),
		middlewarex.Recovery,
		middlewarex.RequestLogging(cfg.HTTP.LogFieldMaxLen, logx.NewSensitiveDataMasker()),
		middlewarex.ResponseLogging(cfg.HTTP.LogFieldMaxLen, logx.NewSensitiveDataMasker()),
	)

	srv := server.NewServer(server.NewDashboardServer(deps.Dashboard, deps.DefaultLanguage))
	srv.RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	warmer := worker.NewQuestIndexWarmer(deps.QuestIndex)
	modules.Ticker{Name: "quest-index-warmer", Interval: cfg.QuestIndex.WarmInterval}.Run(ctx, g, warmer.Job)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newQuestIndexStore Redis при заданном адресе, иначе память процесса.
func newQuestIndexStore(
	ctx context.Context,
	cfg config.Config,
) (questindex.Store, []probe.Check, func(context.Context), error) {
	if !cfg.Redis.Enabled() {
		logger(ctx).Info("quest index store: memory", slog.Duration("ttl", cfg.QuestIndex.TTL))

		return questindex.NewMemoryStore(cfg.QuestIndex.TTL), nil, func(context.Context) {}, nil
	}

	redisConnector := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}

	client, err := redisConnector.Client(ctx)
	if err != nil {
		redisConnector.Close(ctx)

		return nil, nil, nil, fmt.Errorf("redisConnector.Client: %w", err)
	}

	logger(ctx).Info("quest index store: redis", slog.String("address", cfg.Redis.Address))

	checks := []probe.Check{{Name: "redis", Fn: redisConnector.Ping}}

	return questindex.NewRedisStore(client, cfg.QuestIndex.TTL), checks, redisConnector.Close, nil
}
