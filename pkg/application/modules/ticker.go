package modules

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"tarkov_market/pkg/logx"
)

// Ticker запускает Job сразу и затем каждые Interval до отмены ctx.
// Ошибка Job логируется и не останавливает приложение.
// Interval <= 0 отключает тикер.
type Ticker struct {
	Name     string
	Interval time.Duration
}

func (t Ticker) Run(ctx context.Context, g *errgroup.Group, job func(ctx context.Context) error) {
	if t.Interval <= 0 {
		logger(ctx).Info("ticker disabled", slog.String("name", t.Name), slog.Duration("interval", t.Interval))

		return
	}

	g.Go(func() error {
		ticker := time.NewTicker(t.Interval)
		defer ticker.Stop()

		logger(ctx).Info("ticker started", slog.String("name", t.Name), slog.Duration("interval", t.Interval))

		for {
			if err := job(ctx); err != nil {
				logger(ctx).Warn("ticker job failed", slog.String("name", t.Name), logx.Error(err))
			}

			select {
			case <-ctx.Done():
				logger(ctx).Info("ticker stopped", slog.String("name", t.Name))

				return nil
			case <-ticker.C:
			}
		}
	})
}
