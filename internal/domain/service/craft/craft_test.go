package craft_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/value"
)

func priced(name string, avg float64) *entity.Item {
	return &entity.Item{Name: name, AverageDailyPrice: lo.ToPtr(avg)}
}

func recipe(station string, level int, duration *float64, rewards, required []entity.ItemCount) entity.Craft {
	return entity.Craft{
		Station:         entity.StationRef{Name: station, NormalizedName: value.Normalize(station)},
		Level:           lo.ToPtr(level),
		DurationSeconds: duration,
		RewardItems:     rewards,
		RequiredItems:   required,
	}
}

func products(rows []craft.Row) []string {
	return lo.Map(rows, func(r craft.Row, _ int) string { return r.Products })
}

func TestComputeProfit(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	crafts := []entity.Craft{
		recipe("Workbench", 1, lo.ToPtr(3600.0),
			[]entity.ItemCount{{Item: priced("Gunpowder", 500), Count: 2}},
			[]entity.ItemCount{{Item: priced("Bolts", 200), Count: 2}},
		),
	}

	rows := craft.Compute(locale, crafts, craft.Query{
		StationNormalizedName: "workbench",
		MaxStationLevel:       3,
		SortKey:               value.SortProfit,
	})

	rq.Len(rows, 1)

	row := rows[0]
	rq.Equal(1000.0, row.Revenue)
	rq.Equal(400.0, row.Cost)
	rq.Equal(600.0, row.Profit)
	rq.Equal(600.0, row.ProfitPerHour)
	rq.Equal(3600.0, row.DurationSeconds)
	rq.Equal("Gunpowder x2", row.Products)
	rq.Equal("Bolts x2", row.Materials)
	rq.Equal("1,000", row.DisplayRevenue)
	rq.Equal("400", row.DisplayCost)
	rq.Equal("600 ₽", row.DisplayProfit)
	rq.Equal("600 ₽/h", row.DisplayProfitPerHour)
	rq.Equal("60 min", row.DisplayDuration)
}

func TestComputeFiltersAndSorts(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	crafts := []entity.Craft{
		// profit 100, 1h
		recipe("Lavatory", 1, lo.ToPtr(3600.0),
			[]entity.ItemCount{{Item: priced("Toilet paper", 300), Count: 1}},
			[]entity.ItemCount{{Item: priced("Paper", 200), Count: 1}},
		),
		// profit -50
		recipe("Lavatory", 1, lo.ToPtr(600.0),
			[]entity.ItemCount{{Item: priced("Duct tape", 150), Count: 1}},
			[]entity.ItemCount{{Item: priced("Glue", 200), Count: 1}},
		),
		// profit 400, 4h
		recipe("Lavatory", 2, lo.ToPtr(14400.0),
			[]entity.ItemCount{{Item: priced("Corrugated hose", 1400), Count: 1}},
			[]entity.ItemCount{{Item: priced("Hose", 1000), Count: 1}},
		),
		// profit 100, no duration (1s)
		recipe("Lavatory", 1, nil,
			[]entity.ItemCount{{Item: priced("Paper towel", 100), Count: 1}},
			nil,
		),
		// level too high
		recipe("Lavatory", 3, lo.ToPtr(60.0),
			[]entity.ItemCount{{Item: priced("Pipe grip wrench", 90000), Count: 1}},
			nil,
		),
		// other station
		recipe("Medstation", 1, lo.ToPtr(60.0),
			[]entity.ItemCount{{Item: priced("Salewa", 20000), Count: 1}},
			nil,
		),
	}

	testCases := []struct {
		name  string
		query craft.Query
		want  []string
	}{
		{
			name:  "Profit descending, ties stable",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, SortKey: value.SortProfit},
			want:  []string{"Corrugated hose x1", "Toilet paper x1", "Paper towel x1", "Duct tape x1"},
		},
		{
			name:  "Hourly descending",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, SortKey: value.SortHourly},
			want:  []string{"Paper towel x1", "Toilet paper x1", "Corrugated hose x1", "Duct tape x1"},
		},
		{
			name:  "Time ascending",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, SortKey: value.SortTime},
			want:  []string{"Paper towel x1", "Duct tape x1", "Toilet paper x1", "Corrugated hose x1"},
		},
		{
			name:  "Exclude loss by profit",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, ExcludeLoss: true, SortKey: value.SortProfit},
			want:  []string{"Corrugated hose x1", "Toilet paper x1", "Paper towel x1"},
		},
		{
			name:  "Exclude loss by hourly",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, ExcludeLoss: true, SortKey: value.SortHourly},
			want:  []string{"Paper towel x1", "Toilet paper x1", "Corrugated hose x1"},
		},
		{
			name:  "Exclude loss by time",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 2, ExcludeLoss: true, SortKey: value.SortTime},
			want:  []string{"Paper towel x1", "Toilet paper x1", "Corrugated hose x1"},
		},
		{
			name:  "Item filter over rewards",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 3, ItemName: "PAPER"},
			want:  []string{"Toilet paper x1", "Paper towel x1"},
		},
		{
			name:  "Item filter ignores materials",
			query: craft.Query{StationNormalizedName: "lavatory", MaxStationLevel: 3, ItemName: "glue"},
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rows := craft.Compute(locale, crafts, tc.query)

			rq.Equal(tc.want, products(rows))

			if tc.query.ExcludeLoss {
				for _, r := range rows {
					rq.GreaterOrEqual(r.Profit, 0.0)
				}
			}
		})
	}
}

func TestComputeDataGaps(t *testing.T) {
	rq := require.New(t)

	locale := value.DefaultLocale(value.LanguageEN)

	crafts := []entity.Craft{
		recipe("Workbench", 1, lo.ToPtr(0.0),
			[]entity.ItemCount{{Item: &entity.Item{Name: "Unpriced"}, Count: 1.5}},
			[]entity.ItemCount{{Item: nil, Count: 3}},
		),
	}

	rows := craft.Compute(locale, crafts, craft.Query{StationNormalizedName: "workbench", MaxStationLevel: 1})

	rq.Len(rows, 1)
	rq.Zero(rows[0].Profit)
	rq.Equal(1.0, rows[0].DurationSeconds)
	rq.Equal("Unpriced x1.5", rows[0].Products)
	rq.Equal("Unknown x3", rows[0].Materials)

	rq.Empty(craft.Compute(locale, nil, craft.Query{StationNormalizedName: "workbench", MaxStationLevel: 3}))
}
