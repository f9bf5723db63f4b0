package taskitem_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/internal/domain/service/taskitem"
	"tarkov_market/internal/domain/value"
)

func deliver(item *entity.Item, count *int, fir bool) entity.Objective {
	return entity.Objective{Description: "Hand over", Item: item, Count: count, FoundInRaid: fir}
}

func TestAggregateBolts(t *testing.T) {
	rq := require.New(t)

	bolts := &entity.Item{Name: "Bolts", AverageDailyPrice: lo.ToPtr(15000.0)}

	tasks := []entity.Task{
		{
			Name:       "Gunsmith - Part 1",
			Trader:     entity.TraderRef{Name: "Mechanic"},
			Objectives: []entity.Objective{deliver(bolts, lo.ToPtr(2), false)},
		},
		{
			Name:   "Introduction",
			Trader: entity.TraderRef{Name: "Jaeger"},
			Objectives: []entity.Objective{
				{Description: "Find the camp"},
				deliver(bolts, lo.ToPtr(3), true),
			},
		},
	}

	resolver := price.NewResolver(value.DefaultLocale(value.LanguageEN))
	rows := taskitem.Aggregate(resolver, tasks, nil)

	rq.Len(rows, 1)
	rq.Equal("Bolts", rows[0].Name)
	rq.Equal(5, rows[0].TotalCount)
	rq.Equal(3, rows[0].FoundInRaidCount)
	rq.Equal([]string{"Gunsmith - Part 1", "Introduction"}, rows[0].Tasks)
	rq.Equal([]string{"Jaeger", "Mechanic"}, rows[0].Traders)
	rq.Equal("Jaeger, Mechanic", rows[0].DisplayTraders)
	rq.Equal(lo.ToPtr(15000.0), rows[0].Price)
	rq.Equal("15,000 ₽", rows[0].DisplayFleaPrice)
	rq.Equal(price.NoDeal, rows[0].DisplayBestTrader)
}

func TestAggregateOrderAndDefaults(t *testing.T) {
	rq := require.New(t)

	cheap := &entity.Item{Name: "Matches", AverageDailyPrice: lo.ToPtr(100.0)}
	pricey := &entity.Item{Name: "Graphics card", AverageDailyPrice: lo.ToPtr(300000.0)}
	unpriced := &entity.Item{
		Name: "Salewa",
		BuyOffers: []entity.VendorOffer{{
			Price:        lo.ToPtr(12000.0),
			VendorName:   "Therapist",
			Requirements: []entity.Requirement{entity.QuestRequirement("q1")},
		}},
	}
	noPrice := &entity.Item{Name: "Dogtag"}

	tasks := []entity.Task{{
		Name:   "Mixed",
		Trader: entity.TraderRef{Name: "Therapist"},
		Objectives: []entity.Objective{
			deliver(noPrice, nil, false),
			deliver(cheap, nil, false),
			deliver(unpriced, lo.ToPtr(4), true),
			deliver(pricey, nil, false),
		},
	}}

	resolver := price.NewResolver(value.DefaultLocale(value.LanguageEN))
	rows := taskitem.Aggregate(resolver, tasks, entity.QuestNames{"q1": "Shortage"})

	rq.Equal(
		[]string{"Salewa", "Graphics card", "Matches", "Dogtag"},
		lo.Map(rows, func(r taskitem.Row, _ int) string { return r.Name }),
	)

	rq.Equal(1, rows[3].TotalCount)
	rq.Nil(rows[3].Price)
	rq.Equal("Not sold", rows[3].DisplayFleaPrice)

	rq.Equal(4, rows[0].FoundInRaidCount)
	rq.Equal("Therapist (Shortage): 12,000 ₽", rows[0].DisplayBestTrader)
	rq.Equal(lo.ToPtr(12000.0), rows[0].Price)
}

func TestAggregateEmpty(t *testing.T) {
	rq := require.New(t)

	resolver := price.NewResolver(value.DefaultLocale(value.LanguageJA))

	rq.Empty(taskitem.Aggregate(resolver, nil, nil))
	rq.Empty(taskitem.Aggregate(resolver, []entity.Task{{Name: "No items"}}, nil))
}
