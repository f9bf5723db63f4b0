package tarkovdev

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"tarkov_market/internal/domain"
	"tarkov_market/pkg/errcodes"
)

var (
	ErrNetworkFailure    = errors.New("tarkov.dev: network failure")
	ErrMalformedResponse = errors.New("tarkov.dev: malformed response")
)

// GraphQLError первая ошибка из errors[] ответа.
type GraphQLError struct {
	Message string
}

func (e *GraphQLError) Error() string {
	return "tarkov.dev: graphql error: " + e.Message
}

// classify приводит ошибку запроса к таксономии транспорта
// и заворачивает её в доменную ошибку с кодом.
func classify(err error) error {
	var gqlErrs gqlerror.List

	switch {
	case errors.Is(err, ErrNetworkFailure),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return domain.WrapError(
			fmt.Errorf("%w: %w", ErrNetworkFailure, err),
			errcodes.UpstreamUnavailable,
			"tarkov.dev is unavailable",
		)
	case errors.As(err, &gqlErrs) && len(gqlErrs) > 0:
		gqlErr := &GraphQLError{Message: gqlErrs[0].Message}

		return domain.WrapError(gqlErr, errcodes.UpstreamGraphQLError, gqlErr.Message)
	default:
		return domain.WrapError(
			fmt.Errorf("%w: %w", ErrMalformedResponse, err),
			errcodes.UpstreamMalformed,
			"tarkov.dev returned an unreadable response",
		)
	}
}

func missingData(field string) error {
	return domain.WrapError(
		fmt.Errorf("%w: data.%s is missing", ErrMalformedResponse, field),
		errcodes.UpstreamMalformed,
		"tarkov.dev returned no data",
	)
}
