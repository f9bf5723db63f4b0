package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/service/task"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
)

var errUpstream = domain.WrapError(errors.New("dial tcp: refused"), errcodes.UpstreamUnavailable, "tarkov.dev is unavailable")

type fakeUpstream struct {
	caliber string
	items   []entity.Item
	tasks   []entity.Task
	crafts  []entity.Craft
	err     error
}

func (f *fakeUpstream) Ammo(_ context.Context, _ value.Language, caliber string) ([]entity.Item, error) {
	f.caliber = caliber
	return f.items, f.err
}

func (f *fakeUpstream) Items(context.Context, value.Language, string) ([]entity.Item, error) {
	return f.items, f.err
}

func (f *fakeUpstream) ItemsByCategory(context.Context, value.Language, ...value.Category) ([]entity.Item, error) {
	return f.items, f.err
}

func (f *fakeUpstream) Tasks(context.Context, value.Language) ([]entity.Task, error) {
	return f.tasks, f.err
}

func (f *fakeUpstream) TaskItems(context.Context, value.Language) ([]entity.Task, error) {
	return f.tasks, f.err
}

func (f *fakeUpstream) Crafts(context.Context, value.Language) ([]entity.Craft, error) {
	return f.crafts, f.err
}

func (f *fakeUpstream) Barters(context.Context, value.Language, string) ([]entity.Item, error) {
	return f.items, f.err
}

type fakeQuests struct {
	names entity.QuestNames
	err   error
}

func (f fakeQuests) Lookup(context.Context, value.Language) (entity.QuestNames, error) {
	return f.names, f.err
}

func TestAmmoStripsNATO(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{items: []entity.Item{{
		Name: "M855",
		Ammo: &entity.AmmoProperties{Damage: 54, PenetrationPower: 31},
	}}}

	svc := dashboard.NewService(upstream, fakeQuests{})
	panel := svc.Ammo(context.Background(), value.LanguageEN, dashboard.AmmoQuery{Caliber: "5.56x45mm NATO"})

	rq.Equal("5.56x45mm", upstream.caliber)
	rq.Nil(panel.Notice)
	rq.Len(panel.Rows, 1)
}

func TestUpstreamFailureBecomesNotice(t *testing.T) {
	rq := require.New(t)

	svc := dashboard.NewService(&fakeUpstream{err: errUpstream}, fakeQuests{})
	ctx := context.Background()

	notices := []*dashboard.Notice{
		svc.Ammo(ctx, value.LanguageEN, dashboard.AmmoQuery{}).Notice,
		svc.Items(ctx, value.LanguageEN, "ledx").Notice,
		svc.Category(ctx, value.LanguageEN, value.CategoryAmmo).Notice,
		svc.Barters(ctx, value.LanguageEN, "salewa").Notice,
		svc.TaskItems(ctx, value.LanguageEN).Notice,
		svc.Tasks(ctx, value.LanguageEN, task.Filter{}).Notice,
		svc.Crafts(ctx, value.LanguageEN, craft.Query{}).Notice,
	}

	for _, n := range notices {
		rq.NotNil(n)
		rq.Equal(errcodes.UpstreamUnavailable, n.Code)
		rq.Equal("tarkov.dev is unavailable", n.Message)
	}

	panel := svc.Ammo(ctx, value.LanguageEN, dashboard.AmmoQuery{})
	rq.NotNil(panel.Rows)
	rq.Empty(panel.Rows)

	plain := dashboard.NewService(&fakeUpstream{err: errors.New("boom")}, fakeQuests{})
	rq.Equal(errcodes.InternalServerError, plain.Crafts(ctx, value.LanguageEN, craft.Query{}).Notice.Code)
}

func TestEmptyResultIsNotANotice(t *testing.T) {
	rq := require.New(t)

	svc := dashboard.NewService(&fakeUpstream{}, fakeQuests{})

	panel := svc.Ammo(context.Background(), value.LanguageEN, dashboard.AmmoQuery{Filter: ammo.Filter{MinDamage: 1}})

	rq.Nil(panel.Notice)
	rq.Empty(panel.Rows)
}

func TestItemsUseQuestIndex(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{items: []entity.Item{{
		Name: "LEDX",
		BuyOffers: []entity.VendorOffer{{
			Price:        lo.ToPtr(1000000.0),
			VendorName:   "Therapist",
			Requirements: []entity.Requirement{entity.QuestRequirement("7")},
		}},
	}}}

	withIndex := dashboard.NewService(upstream, fakeQuests{names: entity.QuestNames{"7": "Private clinic"}})
	panel := withIndex.Items(context.Background(), value.LanguageEN, "ledx")
	rq.Equal("Therapist (Private clinic): 1,000,000 ₽", panel.Rows[0].DisplayBestTrader)

	brokenIndex := dashboard.NewService(upstream, fakeQuests{err: errUpstream})
	panel = brokenIndex.Items(context.Background(), value.LanguageEN, "ledx")
	rq.Nil(panel.Notice)
	rq.Equal("Therapist (Quest requirement): 1,000,000 ₽", panel.Rows[0].DisplayBestTrader)
}

func TestBartersSkipItemsWithoutTrades(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{items: []entity.Item{
		{Name: "Roubles"},
		{
			Name: "Salewa",
			BartersFor: []entity.Barter{{
				Trader:        entity.TraderRef{Name: "Therapist"},
				Level:         1,
				RequiredItems: []entity.ItemCount{{Count: 2}},
			}},
		},
	}}

	panel := dashboard.NewService(upstream, fakeQuests{}).Barters(context.Background(), value.LanguageEN, "sa")

	rq.Len(panel.Rows, 1)
	rq.Equal("Salewa", panel.Rows[0].Name)
	rq.Equal("Unknown", panel.Rows[0].Produces[0].Counterparts[0].Name)
}

func TestTasksAndCrafts(t *testing.T) {
	rq := require.New(t)

	upstream := &fakeUpstream{
		tasks: []entity.Task{
			{Name: "Debut", Trader: entity.TraderRef{Name: "Prapor", NormalizedName: "prapor"}},
			{Name: "Shortage", Trader: entity.TraderRef{Name: "Therapist", NormalizedName: "therapist"}},
		},
		crafts: []entity.Craft{{
			Station:     entity.StationRef{Name: "Lavatory", NormalizedName: "lavatory"},
			RewardItems: []entity.ItemCount{{Item: &entity.Item{Name: "Paper", AverageDailyPrice: lo.ToPtr(10.0)}, Count: 1}},
		}},
	}

	svc := dashboard.NewService(upstream, fakeQuests{})
	ctx := context.Background()

	tasks := svc.Tasks(ctx, value.LanguageEN, task.Filter{TraderNormalizedName: "prapor", MaxPlayerLevel: 70})
	rq.Len(tasks.Rows, 1)
	rq.Equal("Any", tasks.Rows[0].Map)

	crafts := svc.Crafts(ctx, value.LanguageEN, craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 3})
	rq.Len(crafts.Rows, 1)
	rq.Equal(36000.0, crafts.Rows[0].ProfitPerHour)
}
