package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type sensitiveDataMasker interface {
	Mask(input []byte) []byte
}

// LoggingRoundTripper implements http.RoundTripper interface and executes HTTP
// requests with logging.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	logFieldMaxLen      int
	dumpLevel           slog.Level
	sensitiveDataMasker sensitiveDataMasker
}

// NewLoggingRoundTripper returns a new logging RoundTripper instance.
func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	rt := LoggingRoundTripper{
		next:                next,
		logFieldMaxLen:      0,
		dumpLevel:           slog.LevelDebug,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

// RoundTrip implements http.RoundTripper interface.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger(ctx).With(slog.String(logx.FieldRequestID, xid.New().String()))

	if log.Enabled(ctx, rt.dumpLevel) {
		reqBytes, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			log.Error("httputil.DumpRequestOut", logx.Error(err))
		}

		log.Log(ctx, rt.dumpLevel, logx.FieldHTTPRequest,
			slog.String(logx.FieldURL, req.URL.String()),
			slog.String(logx.FieldRequestBody, string(rt.truncate(rt.sensitiveDataMasker.Mask(reqBytes)))),
		)
	}

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Warn(logx.FieldHTTPResponse,
			slog.String(logx.FieldURL, req.URL.String()),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			logx.Error(err),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	attrs := []any{
		slog.String(logx.FieldURL, req.URL.String()),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	}

	if log.Enabled(ctx, rt.dumpLevel) {
		respBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.Error("httputil.DumpResponse", logx.Error(err))
		}

		respBytes = rt.sensitiveDataMasker.Mask(respBytes)

		attrs = append(attrs, slog.String(logx.FieldResponseBody, string(rt.truncate(respBytes))))
	}

	log.Info(logx.FieldHTTPResponse, attrs...)

	return resp, nil
}

func (rt LoggingRoundTripper) truncate(b []byte) []byte {
	if rt.logFieldMaxLen != 0 && len(b) > rt.logFieldMaxLen {
		return b[:rt.logFieldMaxLen]
	}

	return b
}
