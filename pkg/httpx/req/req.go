package req

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"tarkov_market/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// QueryBinder fills itself from URL query values. Binders only parse; range
// and enum checks live in `validate` struct tags.
type QueryBinder interface {
	BindQuery(values url.Values) error
}

func Query(r *http.Request, dest QueryBinder) error {
	if err := dest.BindQuery(r.URL.Query()); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("BindQuery: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// Int returns the integer under key or def when the key is absent or empty.
func Int(values url.Values, key string, def int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return v, nil
}

// Bool returns the boolean under key or def when the key is absent or empty.
func Bool(values url.Values, key string, def bool) (bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}

	return v, nil
}
