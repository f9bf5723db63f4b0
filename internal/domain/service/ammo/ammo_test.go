package ammo_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/value"
)

func round(name string, damage, pen, frag float64, avg *float64) entity.Item {
	return entity.Item{
		Name:              name,
		AverageDailyPrice: avg,
		Ammo: &entity.AmmoProperties{
			Damage:              damage,
			PenetrationPower:    pen,
			FragmentationChance: frag,
		},
	}
}

func names(rows []ammo.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}

	return out
}

func TestApply(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	items := []entity.Item{
		round("M855", 54, 31, 0.4, lo.ToPtr(1200.0)),
		{Name: "Not ammo"},
		round("M995", 42, 53, 0.32, nil),
		round("M856", 60, 18, 0.33, lo.ToPtr(300.0)),
		round("M855A1", 49, 44, 0.34, lo.ToPtr(2500.0)),
		round("Warmageddon", 88, 3, 0.9, nil),
		round("M856A1", 52, 31, 0.52, nil),
	}

	testCases := []struct {
		name   string
		filter ammo.Filter
		want   []string
	}{
		{
			name: "Zero thresholds admit all ammo",
			want: []string{"M995", "M855A1", "M855", "M856A1", "M856", "Warmageddon"},
		},
		{
			name:   "Penetration threshold",
			filter: ammo.Filter{MinPenetration: 31},
			want:   []string{"M995", "M855A1", "M855", "M856A1"},
		},
		{
			name:   "Damage threshold",
			filter: ammo.Filter{MinDamage: 54},
			want:   []string{"M855", "M856", "Warmageddon"},
		},
		{
			name:   "Nothing passes",
			filter: ammo.Filter{MinDamage: 500},
			want:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := ammo.Apply(locale, items, tc.filter)

			rq.Empty(cmp.Diff(tc.want, names(got)))
			rq.True(slices.IsSortedFunc(got, func(a, b ammo.Row) int {
				return int(b.PenetrationPower - a.PenetrationPower)
			}))
		})
	}
}

func TestApplyDisplay(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	rows := ammo.Apply(locale, []entity.Item{
		round("M855", 54, 31, 0.4, lo.ToPtr(1234.0)),
		round("M995", 42, 53, 0.325, nil),
	}, ammo.Filter{})

	rq.Len(rows, 2)
	rq.Equal("Not sold", rows[0].DisplayPrice)
	rq.Nil(rows[0].Price)
	rq.Equal("1,234 ₽", rows[1].DisplayPrice)
	rq.Equal("40%", rows[1].DisplayFragmentation)
}

func TestApplyIdempotent(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	items := []entity.Item{
		round("A", 50, 20, 0.1, nil),
		round("B", 50, 40, 0.1, nil),
		round("C", 50, 20, 0.1, nil),
	}

	first := ammo.Apply(locale, items, ammo.Filter{MinDamage: 10})

	again := make([]entity.Item, len(first))
	for i, r := range first {
		again[i] = round(r.Name, r.Damage, r.PenetrationPower, r.FragmentationChance, nil)
	}

	second := ammo.Apply(locale, again, ammo.Filter{MinDamage: 10})

	rq.Equal(first, second)
	rq.Equal([]string{"B", "A", "C"}, names(second))
}

func TestApplyEmpty(t *testing.T) {
	rq := require.New(t)

	rq.Empty(ammo.Apply(value.DefaultLocale(value.LanguageJA), nil, ammo.Filter{}))
}
