// Package tarkovdev клиент GraphQL API tarkov.dev.
package tarkovdev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Khan/genqlient/graphql"
	jsoniter "github.com/json-iterator/go"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultEndpoint = "https://api.tarkov.dev/graphql"

	defaultTaskLimit     = 1000
	defaultTaskItemLimit = 200
	defaultCategoryLimit = 100
	defaultBarterLimit   = 20
)

type Client struct {
	gql           graphql.Client
	timeout       time.Duration
	taskLimit     int
	taskItemLimit int
	categoryLimit int
	barterLimit   int
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		gql:           graphql.NewClient(endpoint, statusDoer{next: httpClient}),
		taskLimit:     defaultTaskLimit,
		taskItemLimit: defaultTaskItemLimit,
		categoryLimit: defaultCategoryLimit,
		barterLimit:   defaultBarterLimit,
	}
}

// WithTimeout ограничивает каждый запрос. 0 означает без ограничения.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	return c
}

func (c *Client) WithLimits(tasks, taskItems, category, barters int) *Client {
	if tasks > 0 {
		c.taskLimit = tasks
	}

	if taskItems > 0 {
		c.taskItemLimit = taskItems
	}

	if category > 0 {
		c.categoryLimit = category
	}

	if barters > 0 {
		c.barterLimit = barters
	}

	return c
}

// Ammo патроны калибра. Суффикс " NATO" апстрим не находит, его нужно срезать до вызова.
func (c *Client) Ammo(ctx context.Context, lang value.Language, caliber string) ([]entity.Item, error) {
	var data itemsData

	vars := map[string]any{"name": caliber, "lang": lang}
	if err := c.query(ctx, "Ammo", ammoQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Items == nil {
		return nil, missingData("items")
	}

	return itemsToDomain(*data.Items), nil
}

func (c *Client) Items(ctx context.Context, lang value.Language, name string) ([]entity.Item, error) {
	var data itemsData

	vars := map[string]any{"name": name, "lang": lang}
	if err := c.query(ctx, "Items", itemsQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Items == nil {
		return nil, missingData("items")
	}

	return itemsToDomain(*data.Items), nil
}

func (c *Client) ItemsByCategory(ctx context.Context, lang value.Language, categories ...value.Category) ([]entity.Item, error) {
	var data itemsData

	vars := map[string]any{"categories": categories, "limit": c.categoryLimit, "lang": lang}
	if err := c.query(ctx, "Category", categoryQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Items == nil {
		return nil, missingData("items")
	}

	return itemsToDomain(*data.Items), nil
}

func (c *Client) Tasks(ctx context.Context, lang value.Language) ([]entity.Task, error) {
	var data tasksData

	vars := map[string]any{"limit": c.taskLimit, "lang": lang}
	if err := c.query(ctx, "Tasks", tasksQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Tasks == nil {
		return nil, missingData("tasks")
	}

	return tasksToDomain(*data.Tasks), nil
}

// TaskItems квесты, где у целей заполнены только предметы на сдачу.
func (c *Client) TaskItems(ctx context.Context, lang value.Language) ([]entity.Task, error) {
	var data tasksData

	vars := map[string]any{"limit": c.taskItemLimit, "lang": lang}
	if err := c.query(ctx, "TaskItems", taskItemsQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Tasks == nil {
		return nil, missingData("tasks")
	}

	return tasksToDomain(*data.Tasks), nil
}

func (c *Client) Crafts(ctx context.Context, lang value.Language) ([]entity.Craft, error) {
	var data craftsData

	vars := map[string]any{"lang": lang}
	if err := c.query(ctx, "Crafts", craftsQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Crafts == nil {
		return nil, missingData("crafts")
	}

	return craftsToDomain(*data.Crafts), nil
}

func (c *Client) Barters(ctx context.Context, lang value.Language, name string) ([]entity.Item, error) {
	var data itemsData

	vars := map[string]any{"name": name, "limit": c.barterLimit, "lang": lang}
	if err := c.query(ctx, "Barters", bartersQuery, vars, &data); err != nil {
		return nil, err
	}

	if data.Items == nil {
		return nil, missingData("items")
	}

	return itemsToDomain(*data.Items), nil
}

func (c *Client) query(ctx context.Context, opName, document string, vars map[string]any, dest any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()

	err := c.gql.MakeRequest(ctx, &graphql.Request{
		Query:     document,
		Variables: vars,
		OpName:    opName,
	}, &graphql.Response{Data: dest})
	if err != nil {
		err = classify(err)
	}

	requestsTotal.WithLabelValues(opName, resultLabel(err)).Inc()
	requestDuration.WithLabelValues(opName).Observe(time.Since(start).Seconds())

	if err != nil {
		logger(ctx).Warn("tarkov.dev request failed",
			slog.String(logx.FieldOperation, opName),
			logx.Error(err),
		)

		return fmt.Errorf("tarkovdev.%s: %w", opName, err)
	}

	return nil
}

// statusDoer переводит сетевые сбои и не-200 ответы в ErrNetworkFailure.
type statusDoer struct {
	next graphql.Doer
}

func (d statusDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()

		return nil, fmt.Errorf("%w: status %d", ErrNetworkFailure, resp.StatusCode)
	}

	return resp, nil
}

func isNetwork(err error) bool {
	return errors.Is(err, ErrNetworkFailure)
}

func isGraphQL(err error) bool {
	var gqlErr *GraphQLError

	return errors.As(err, &gqlErr)
}
