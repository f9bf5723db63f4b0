package logx

import "regexp"

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^((?:Proxy-)?Authorization: )[^\r\n]+(\r?$)`),
	regexp.MustCompile(`(?im)^((?:Set-)?Cookie: )[^\r\n]+(\r?$)`),
	regexp.MustCompile(`(rediss?://[^:/@\s]*:)[^@\s]+(@)`),
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("(?:[Aa]ccess|[Rr]efresh)?[Tt]oken":\s?").+?(")`),
}

// SensitiveDataMasker маскирует заголовки авторизации, cookie и учётные данные redis.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
