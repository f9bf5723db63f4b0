package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/logx"
)

var errPanic = errors.New("panic in handler")

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, errPanic)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
