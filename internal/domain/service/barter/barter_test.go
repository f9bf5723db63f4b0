package barter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/barter"
	"tarkov_market/internal/domain/value"
)

func TestFlatten(t *testing.T) {
	rq := require.New(t)

	item := entity.Item{
		Name: "Salewa",
		BartersFor: []entity.Barter{{
			Trader: entity.TraderRef{Name: "Therapist"},
			Level:  1,
			RequiredItems: []entity.ItemCount{
				{Item: &entity.Item{Name: "Bandage"}, Count: 2},
				{Item: nil, Count: 1},
			},
			RewardItems: []entity.ItemCount{{Item: &entity.Item{Name: "Salewa"}, Count: 1}},
		}},
		BartersUsing: []entity.Barter{{
			Trader:        entity.TraderRef{Name: "Jaeger"},
			Level:         2,
			RequiredItems: []entity.ItemCount{{Item: &entity.Item{Name: "Salewa"}, Count: 3}},
			RewardItems:   []entity.ItemCount{{Item: &entity.Item{Name: "IFAK"}, Count: 1}},
		}},
	}

	got := barter.Flatten(item)

	rq.False(got.Empty())
	rq.Equal([]entity.BarterTrade{{
		TraderName:   "Therapist",
		LoyaltyLevel: 1,
		Side:         value.BarterProduces,
		Counterparts: []entity.Counterpart{{Name: "Bandage", Count: 2}, {Name: "Unknown", Count: 1}},
	}}, got.Produces)
	rq.Equal([]entity.BarterTrade{{
		TraderName:   "Jaeger",
		LoyaltyLevel: 2,
		Side:         value.BarterConsumes,
		Counterparts: []entity.Counterpart{{Name: "IFAK", Count: 1}},
	}}, got.Consumes)

	rq.Equal("Bandage x2 + Unknown x1", barter.Chain(got.Produces[0]))
	rq.Equal("Jaeger (LL2)", barter.Label(got.Consumes[0]))
}

func TestFlattenEmpty(t *testing.T) {
	rq := require.New(t)

	got := barter.Flatten(entity.Item{Name: "Roubles"})

	rq.True(got.Empty())
	rq.NotNil(got.Produces)
	rq.Empty(got.Produces)
	rq.NotNil(got.Consumes)
	rq.Empty(got.Consumes)
}
