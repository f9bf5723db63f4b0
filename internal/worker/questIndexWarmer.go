package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type QuestIndex interface {
	Warm(ctx context.Context, langs ...value.Language) error
}

// QuestIndexWarmer заранее перестраивает индексы квестов, чтобы первый
// запрос панели не ждал загрузки всех квестов.
type QuestIndexWarmer struct {
	index     QuestIndex
	languages []value.Language
	timeout   time.Duration
}

func NewQuestIndexWarmer(index QuestIndex) *QuestIndexWarmer {
	return &QuestIndexWarmer{
		index:     index,
		languages: []value.Language{value.LanguageJA, value.LanguageEN},
		timeout:   time.Minute,
	}
}

func (w *QuestIndexWarmer) WithLanguages(langs ...value.Language) *QuestIndexWarmer {
	w.languages = langs
	return w
}

func (w *QuestIndexWarmer) WithTimeout(timeout time.Duration) *QuestIndexWarmer {
	w.timeout = timeout
	return w
}

// Job прогревает все языки. Сбой одного языка не мешает остальным.
func (w *QuestIndexWarmer) Job(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	var errs []error

	for _, lang := range w.languages {
		start := time.Now()

		if err := w.index.Warm(ctx, lang); err != nil {
			errs = append(errs, fmt.Errorf("index.Warm(%s): %w", lang, err))

			continue
		}

		logger(ctx).Debug("quest index warmed",
			slog.String(logx.FieldLanguage, lang.String()),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	}

	return errors.Join(errs...)
}
