package httpx

import "log/slog"

type Option func(*LoggingRoundTripper)

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithLogFieldMaxLen truncates dumped request/response bodies; 0 disables truncation.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

// WithDumpLevel sets the level at which full dumps are written. Summaries
// (status, duration) are always written at info.
func WithDumpLevel(level slog.Level) Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpLevel = level
	}
}
