package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"tarkov_market/pkg/logx"
)

func RequestLogging(
	logFieldMaxLen int,
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := true

			if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				dumpBody = false
			}

			dump, err := httputil.DumpRequest(r, dumpBody)
			dump = sensitiveDataMasker.Mask(dump)

			if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Debug(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(dump)),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
