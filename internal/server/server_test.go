package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/server"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/rest"
	"tarkov_market/pkg/tests"
)

type fakeUpstream struct {
	lang    value.Language
	caliber string
	items   []entity.Item
	tasks   []entity.Task
	crafts  []entity.Craft
	err     error
}

func (f *fakeUpstream) Ammo(_ context.Context, lang value.Language, caliber string) ([]entity.Item, error) {
	f.lang, f.caliber = lang, caliber
	return f.items, f.err
}

func (f *fakeUpstream) Items(_ context.Context, lang value.Language, _ string) ([]entity.Item, error) {
	f.lang = lang
	return f.items, f.err
}

func (f *fakeUpstream) ItemsByCategory(_ context.Context, lang value.Language, _ ...value.Category) ([]entity.Item, error) {
	f.lang = lang
	return f.items, f.err
}

func (f *fakeUpstream) Tasks(_ context.Context, lang value.Language) ([]entity.Task, error) {
	f.lang = lang
	return f.tasks, f.err
}

func (f *fakeUpstream) TaskItems(_ context.Context, lang value.Language) ([]entity.Task, error) {
	f.lang = lang
	return f.tasks, f.err
}

func (f *fakeUpstream) Crafts(_ context.Context, lang value.Language) ([]entity.Craft, error) {
	f.lang = lang
	return f.crafts, f.err
}

func (f *fakeUpstream) Barters(_ context.Context, lang value.Language, _ string) ([]entity.Item, error) {
	f.lang = lang
	return f.items, f.err
}

type noQuests struct{}

func (noQuests) Lookup(context.Context, value.Language) (entity.QuestNames, error) {
	return entity.QuestNames{}, nil
}

// randomItem предмет с одним предложением торговца и, иногда, барахолки.
func randomItem(random tests.Randomizer) entity.Item {
	price := random.Price(100_000)
	item := entity.Item{
		Name: random.Name(),
		BuyOffers: []entity.VendorOffer{
			{VendorName: "Prapor", Price: &price},
		},
	}

	if random.Bool() {
		flea := random.Price(100_000)
		item.BuyOffers = append(item.BuyOffers, entity.VendorOffer{
			VendorName: entity.FleaMarketVendor,
			Price:      &flea,
		})
	}

	return item
}

func randomAmmo(random tests.Randomizer, penetration, damage float64) entity.Item {
	item := randomItem(random)
	item.Ammo = &entity.AmmoProperties{
		PenetrationPower: penetration,
		Damage:           damage,
	}

	return item
}

func newTestServer(t *testing.T, upstream *fakeUpstream) tests.APIClient {
	t.Helper()

	svc := dashboard.NewService(upstream, noQuests{})
	srv := server.NewServer(server.NewDashboardServer(svc, value.DefaultLanguage))

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(t, httpServer.URL, httpServer.Client())
}

func TestGetV1Ammo(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	upstream := &fakeUpstream{items: []entity.Item{
		randomAmmo(random, 21, 60),
		randomAmmo(random, 44, 40),
		randomAmmo(random, 10, 80),
	}}
	client := newTestServer(t, upstream)

	var panel rest.Panel[rest.Ammo]

	resp, err := client.Get(context.Background(), "/v1/ammo", url.Values{
		"caliber":        {"5.56x45mm NATO"},
		"minPenetration": {"20"},
		"lang":           {"en"},
	}, &panel, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal("5.56x45mm", upstream.caliber)
	rq.Equal(value.LanguageEN, upstream.lang)
	rq.Nil(panel.Notice)
	rq.Len(panel.Rows, 2)
	rq.InDelta(44, panel.Rows[0].PenetrationPower, 0)
	rq.InDelta(21, panel.Rows[1].PenetrationPower, 0)
}

func TestGetV1Validation(t *testing.T) {
	rq := require.New(t)

	client := newTestServer(t, &fakeUpstream{})

	testCases := []struct {
		name     string
		endpoint string
	}{
		{name: "ammo without caliber", endpoint: "/v1/ammo"},
		{name: "ammo negative penetration", endpoint: "/v1/ammo?caliber=9x19mm&minPenetration=-1"},
		{name: "ammo non-numeric damage", endpoint: "/v1/ammo?caliber=9x19mm&minDamage=abc"},
		{name: "items without query", endpoint: "/v1/items?q=+"},
		{name: "unknown language", endpoint: "/v1/items?q=salewa&lang=de"},
		{name: "unknown category", endpoint: "/v1/items/category?category=Keys"},
		{name: "tasks without trader", endpoint: "/v1/tasks"},
		{name: "crafts without station", endpoint: "/v1/crafts"},
		{name: "crafts unknown sort", endpoint: "/v1/crafts?station=workbench&sort=name"},
		{name: "crafts level too high", endpoint: "/v1/crafts?station=workbench&maxLevel=4"},
		{name: "crafts bad flag", endpoint: "/v1/crafts?station=workbench&excludeLoss=maybe"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var restErr rest.Error

			resp, err := client.Get(context.Background(), tc.endpoint, nil, nil, &restErr)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(rest.ErrorCode(errcodes.ValidationError), restErr.Code)
		})
	}
}

func TestGetV1ItemsDefaultLanguage(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	item := randomItem(random)
	upstream := &fakeUpstream{items: []entity.Item{item}}
	client := newTestServer(t, upstream)

	var panel rest.Panel[rest.ItemPrice]

	resp, err := client.Get(context.Background(), "/v1/items", url.Values{"q": {"item"}}, &panel, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal(value.LanguageJA, upstream.lang)
	rq.Len(panel.Rows, 1)
	rq.Equal(item.Name, panel.Rows[0].Name)
	rq.NotNil(panel.Rows[0].BestTrader)
	rq.Equal("Prapor", panel.Rows[0].BestTrader.Vendor)
}

func TestGetV1UpstreamFailure(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{
		err: domain.WrapError(errors.New("connection refused"), errcodes.UpstreamUnavailable, "tarkov.dev is unavailable"),
	}
	client := newTestServer(t, upstream)

	var panel rest.Panel[rest.Craft]

	resp, err := client.Get(context.Background(), "/v1/crafts", url.Values{"station": {"workbench"}}, &panel, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Empty(panel.Rows)
	rq.NotNil(panel.Notice)
	rq.Equal(rest.ErrorCode(errcodes.UpstreamUnavailable), panel.Notice.Code)
	rq.Equal("tarkov.dev is unavailable", panel.Notice.Message)
}

func TestGetV1Tasks(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{tasks: []entity.Task{
		{
			Name:           "Debut",
			Trader:         entity.TraderRef{Name: "Prapor", NormalizedName: "prapor"},
			MinPlayerLevel: lo.ToPtr(1),
		},
		{
			Name:           "Gunsmith - Part 1",
			Trader:         entity.TraderRef{Name: "Mechanic", NormalizedName: "mechanic"},
			MinPlayerLevel: lo.ToPtr(2),
		},
	}}
	client := newTestServer(t, upstream)

	var panel rest.Panel[rest.Task]

	resp, err := client.Get(context.Background(), "/v1/tasks", url.Values{"trader": {"Prapor"}}, &panel, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(panel.Rows, 1)
	rq.Equal("Debut", panel.Rows[0].Name)
	rq.Equal(value.AnyMap, panel.Rows[0].Map)
}
