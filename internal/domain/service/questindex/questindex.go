// Package questindex строит и кэширует отображение id квеста в локализованное имя.
package questindex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// absentID так апстрим иногда сериализует отсутствующий id.
const absentID = "None"

const defaultFetchTimeout = 30 * time.Second

type TaskSource interface {
	Tasks(ctx context.Context, lang value.Language) ([]entity.Task, error)
}

type Store interface {
	Get(ctx context.Context, lang value.Language) (entity.QuestNames, bool, error)
	Set(ctx context.Context, lang value.Language, names entity.QuestNames) error
}

// Build собирает индекс. Пустые id пропускаются, при дубликатах побеждает последний.
func Build(tasks []entity.Task) entity.QuestNames {
	names := make(entity.QuestNames, len(tasks))

	for _, task := range tasks {
		if task.ExternalID == nil {
			continue
		}

		id := *task.ExternalID
		if id == "" || id == absentID {
			continue
		}

		names[id] = task.Name
	}

	return names
}

// Indexer мемоизирует индекс по языку. Конкурентные промахи по одному языку
// сводятся к одному запросу в апстрим.
type Indexer struct {
	source  TaskSource
	store   Store
	group   singleflight.Group
	timeout time.Duration
}

func NewIndexer(source TaskSource, store Store) *Indexer {
	return &Indexer{
		source:  source,
		store:   store,
		timeout: defaultFetchTimeout,
	}
}

// WithTimeout ограничивает общий запрос в апстрим. Он не зависит от отмены
// ctx вызывающего, чтобы отключение одного клиента не роняло остальных.
func (x *Indexer) WithTimeout(timeout time.Duration) *Indexer {
	if timeout > 0 {
		x.timeout = timeout
	}

	return x
}

func (x *Indexer) Lookup(ctx context.Context, lang value.Language) (entity.QuestNames, error) {
	names, ok, err := x.store.Get(ctx, lang)
	if err != nil {
		logger(ctx).Warn("questindex: store.Get", logx.Error(err), slog.String(logx.FieldLanguage, lang.String()))
	}

	if ok {
		return names, nil
	}

	return x.build(ctx, lang)
}

func (x *Indexer) build(ctx context.Context, lang value.Language) (entity.QuestNames, error) {
	v, err, _ := x.group.Do(lang.String(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), x.timeout)
		defer cancel()

		tasks, err := x.source.Tasks(fetchCtx, lang)
		if err != nil {
			return nil, fmt.Errorf("source.Tasks: %w", err)
		}

		built := Build(tasks)

		if err := x.store.Set(fetchCtx, lang, built); err != nil {
			logger(ctx).Warn("questindex: store.Set", logx.Error(err), slog.String(logx.FieldLanguage, lang.String()))
		}

		logger(ctx).Info("quest index built",
			slog.String(logx.FieldLanguage, lang.String()),
			slog.Int(logx.FieldRows, len(built)),
		)

		return built, nil
	})
	if err != nil {
		return entity.QuestNames{}, fmt.Errorf("questindex.Lookup: %w", err)
	}

	return v.(entity.QuestNames), nil //nolint:forcetypeassert
}

// Warm перестраивает индекс для перечисленных языков, не глядя в хранилище.
// При сбое в хранилище остаётся прежний индекс.
func (x *Indexer) Warm(ctx context.Context, langs ...value.Language) error {
	for _, lang := range langs {
		if _, err := x.build(ctx, lang); err != nil {
			return fmt.Errorf("build(%s): %w", lang, err)
		}
	}

	return nil
}
