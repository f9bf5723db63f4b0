package application

import (
	"fmt"
	"net/http"

	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/service/questindex"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/infrastructure/tarkovdev"
	"tarkov_market/pkg/httpx"
	"tarkov_market/pkg/logx"
)

// Dashboard собранный сервис панелей и его зависимости.
// Общий для HTTP-сервиса и tarkovctl.
type Dashboard struct {
	Dashboard       *dashboard.Service
	QuestIndex      *questindex.Indexer
	Upstream        *tarkovdev.Client
	DefaultLanguage value.Language
}

func NewDashboard(cfg config.Config, store questindex.Store) (Dashboard, error) {
	defaultLang, err := value.ParseLanguage(cfg.App.DefaultLanguage)
	if err != nil {
		return Dashboard{}, fmt.Errorf("value.ParseLanguage: %w", err)
	}

	locales, err := value.LoadLocales(cfg.Locale.File)
	if err != nil {
		return Dashboard{}, fmt.Errorf("value.LoadLocales: %w", err)
	}

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.TarkovDev.LogFieldMaxLen),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		),
	}

	upstream := tarkovdev.NewClient(cfg.TarkovDev.Endpoint, httpClient).
		WithTimeout(cfg.TarkovDev.RequestTimeout).
		WithLimits(
			cfg.TarkovDev.TaskLimit,
			cfg.TarkovDev.TaskItemLimit,
			cfg.TarkovDev.CategoryLimit,
			cfg.TarkovDev.BarterLimit,
		)

	indexer := questindex.NewIndexer(upstream, store).WithTimeout(cfg.TarkovDev.RequestTimeout)

	return Dashboard{
		Dashboard:       dashboard.NewService(upstream, indexer).WithLocales(locales),
		QuestIndex:      indexer,
		Upstream:        upstream,
		DefaultLanguage: defaultLang,
	}, nil
}
