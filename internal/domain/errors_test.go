package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("client.Items: %w", domain.WrapError(cause, errcodes.UpstreamUnavailable, "tarkov.dev is unavailable"))

	rq.Equal("client.Items: UpstreamUnavailable: tarkov.dev is unavailable: dial tcp: connection refused", err.Error())
	rq.ErrorIs(err, cause)
	rq.ErrorIs(err, domain.NewError(errcodes.UpstreamUnavailable, ""))
	rq.NotErrorIs(err, domain.NewError(errcodes.UpstreamMalformed, ""))

	rq.Equal(errcodes.UpstreamUnavailable, domain.CodeOf(err, errcodes.InternalServerError))
	rq.Equal(errcodes.InternalServerError, domain.CodeOf(cause, errcodes.InternalServerError))
	rq.Equal("UpstreamMalformed: data is missing", domain.NewError(errcodes.UpstreamMalformed, "data is missing").Error())
}
