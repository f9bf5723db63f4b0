package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Ошибки апстрима tarkov.dev
	UpstreamUnavailable  failure.ErrorCode = "UpstreamUnavailable"  // сеть, таймаут, не-200
	UpstreamGraphQLError failure.ErrorCode = "UpstreamGraphQLError" // errors[] в ответе GraphQL
	UpstreamMalformed    failure.ErrorCode = "UpstreamMalformed"    // нет data или битый JSON

	// Параметры запроса
	InvalidLanguage  failure.ErrorCode = "InvalidLanguage"
	InvalidSortKey   failure.ErrorCode = "InvalidSortKey"
	InvalidCategory  failure.ErrorCode = "InvalidCategory"
	EmptySearchQuery failure.ErrorCode = "EmptySearchQuery"

	// Локализация
	InvalidLocaleFile failure.ErrorCode = "InvalidLocaleFile"
)
