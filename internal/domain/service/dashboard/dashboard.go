// Package dashboard собирает панели: один запрос в апстрим, один проход расчёта.
// Сбой апстрима превращается в уведомление панели, а не в ошибку запроса.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/service/barter"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/internal/domain/service/task"
	"tarkov_market/internal/domain/service/taskitem"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var panelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tarkov_market",
	Subsystem: "dashboard",
	Name:      "panels_total",
	Help:      "Built panels by feature and outcome.",
}, []string{"feature", "outcome"})

const (
	FeatureAmmo      = "ammo"
	FeatureItems     = "items"
	FeatureCategory  = "category"
	FeatureBarters   = "barters"
	FeatureTaskItems = "task-items"
	FeatureTasks     = "tasks"
	FeatureCrafts    = "crafts"
)

type Upstream interface {
	Ammo(ctx context.Context, lang value.Language, caliber string) ([]entity.Item, error)
	Items(ctx context.Context, lang value.Language, name string) ([]entity.Item, error)
	ItemsByCategory(ctx context.Context, lang value.Language, categories ...value.Category) ([]entity.Item, error)
	Tasks(ctx context.Context, lang value.Language) ([]entity.Task, error)
	TaskItems(ctx context.Context, lang value.Language) ([]entity.Task, error)
	Crafts(ctx context.Context, lang value.Language) ([]entity.Craft, error)
	Barters(ctx context.Context, lang value.Language, name string) ([]entity.Item, error)
}

type QuestIndex interface {
	Lookup(ctx context.Context, lang value.Language) (entity.QuestNames, error)
}

// Notice сообщение панели о том, что данные не загрузились.
type Notice struct {
	Code    failure.ErrorCode
	Message string
}

// Panel строки панели. Notice заполнен только при сбое загрузки,
// пустые Rows без Notice означают, что фильтр ничего не нашёл.
type Panel[T any] struct {
	Rows   []T
	Notice *Notice
}

type AmmoQuery struct {
	Caliber string
	Filter  ammo.Filter
}

type BarterEntry struct {
	Name     string
	WikiLink string
	barter.Result
}

type Service struct {
	upstream Upstream
	quests   QuestIndex
	locales  value.Locales
}

func NewService(upstream Upstream, quests QuestIndex) *Service {
	return &Service{
		upstream: upstream,
		quests:   quests,
		locales:  value.DefaultLocales(),
	}
}

func (s *Service) WithLocales(locales value.Locales) *Service {
	s.locales = locales
	return s
}

func (s *Service) Ammo(ctx context.Context, lang value.Language, q AmmoQuery) Panel[ammo.Row] {
	items, err := s.upstream.Ammo(ctx, lang, strings.ReplaceAll(q.Caliber, " NATO", ""))
	if err != nil {
		return failed[ammo.Row](ctx, FeatureAmmo, err)
	}

	return built(ctx, FeatureAmmo, ammo.Apply(s.locales.Get(lang), items, q.Filter))
}

func (s *Service) Items(ctx context.Context, lang value.Language, name string) Panel[catalog.Entry] {
	items, err := s.upstream.Items(ctx, lang, name)
	if err != nil {
		return failed[catalog.Entry](ctx, FeatureItems, err)
	}

	return built(ctx, FeatureItems, catalog.Search(s.resolver(lang), items, s.questNames(ctx, lang)))
}

func (s *Service) Category(ctx context.Context, lang value.Language, category value.Category) Panel[catalog.Row] {
	items, err := s.upstream.ItemsByCategory(ctx, lang, category)
	if err != nil {
		return failed[catalog.Row](ctx, FeatureCategory, err)
	}

	return built(ctx, FeatureCategory, catalog.Category(s.resolver(lang), items, s.questNames(ctx, lang)))
}

// Barters предметы без бартеров пропускаются.
func (s *Service) Barters(ctx context.Context, lang value.Language, name string) Panel[BarterEntry] {
	items, err := s.upstream.Barters(ctx, lang, name)
	if err != nil {
		return failed[BarterEntry](ctx, FeatureBarters, err)
	}

	entries := make([]BarterEntry, 0, len(items))

	for _, item := range items {
		result := barter.Flatten(item)
		if result.Empty() {
			continue
		}

		entries = append(entries, BarterEntry{
			Name:     item.Name,
			WikiLink: item.WikiLink,
			Result:   result,
		})
	}

	return built(ctx, FeatureBarters, entries)
}

func (s *Service) TaskItems(ctx context.Context, lang value.Language) Panel[taskitem.Row] {
	tasks, err := s.upstream.TaskItems(ctx, lang)
	if err != nil {
		return failed[taskitem.Row](ctx, FeatureTaskItems, err)
	}

	return built(ctx, FeatureTaskItems, taskitem.Aggregate(s.resolver(lang), tasks, s.questNames(ctx, lang)))
}

func (s *Service) Tasks(ctx context.Context, lang value.Language, filter task.Filter) Panel[task.Row] {
	tasks, err := s.upstream.Tasks(ctx, lang)
	if err != nil {
		return failed[task.Row](ctx, FeatureTasks, err)
	}

	return built(ctx, FeatureTasks, task.Rows(task.Apply(tasks, filter)))
}

func (s *Service) Crafts(ctx context.Context, lang value.Language, q craft.Query) Panel[craft.Row] {
	crafts, err := s.upstream.Crafts(ctx, lang)
	if err != nil {
		return failed[craft.Row](ctx, FeatureCrafts, err)
	}

	return built(ctx, FeatureCrafts, craft.Compute(s.locales.Get(lang), crafts, q))
}

func (s *Service) resolver(lang value.Language) price.Resolver {
	return price.NewResolver(s.locales.Get(lang))
}

// questNames при сбое индекса квестов панель строится с заглушками.
func (s *Service) questNames(ctx context.Context, lang value.Language) entity.QuestNames {
	names, err := s.quests.Lookup(ctx, lang)
	if err != nil {
		logger(ctx).Warn("quest index unavailable", logx.Error(err), slog.String(logx.FieldLanguage, lang.String()))

		return nil
	}

	return names
}

func built[T any](ctx context.Context, feature string, rows []T) Panel[T] {
	outcome := "rows"
	if len(rows) == 0 {
		outcome = "empty"
	}

	panelsTotal.WithLabelValues(feature, outcome).Inc()

	logger(ctx).Debug("panel built",
		slog.String(logx.FieldFeature, feature),
		slog.Int(logx.FieldRows, len(rows)),
	)

	return Panel[T]{Rows: rows}
}

func failed[T any](ctx context.Context, feature string, err error) Panel[T] {
	panelsTotal.WithLabelValues(feature, "notice").Inc()

	logger(ctx).Error("panel failed", slog.String(logx.FieldFeature, feature), logx.Error(err))

	return Panel[T]{
		Rows:   []T{},
		Notice: noticeFrom(err),
	}
}

func noticeFrom(err error) *Notice {
	var appErr *domain.AppError

	if errors.As(err, &appErr) {
		return &Notice{Code: appErr.Code, Message: appErr.Message}
	}

	return &Notice{Code: errcodes.InternalServerError, Message: "data is unavailable"}
}
