package tests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient клиент HTTP API для тестов. Дампы запросов и ответов уходят в t.Log.
type APIClient struct {
	t          testing.TB
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(
	t testing.TB,
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		t:          t,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Get декодирует тело 2xx в dest, остальные ответы в errDest.
// Тело ответа к моменту возврата уже прочитано и закрыто.
func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	query url.Values,
	dest any,
	errDest any,
) (*http.Response, error) {
	target := a.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	a.t.Logf("Request:  %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if raw, err := httputil.DumpResponse(resp, true); err == nil {
		a.t.Logf("Response: %s", raw)
	}

	if err = decode(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return resp, nil
}

func decode(r *http.Response, dest, errDest any) error {
	target := errDest
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		target = dest
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode(%d): %w", r.StatusCode, err)
	}

	return nil
}
