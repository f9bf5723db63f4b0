// Package craft считает выручку, себестоимость и прибыль рецептов станции.
package craft

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/internal/domain/value"
)

const secondsPerHour = 3600

type Query struct {
	StationNormalizedName string
	MaxStationLevel       int
	ItemName              string
	ExcludeLoss           bool
	SortKey               value.SortKey
}

type Row struct {
	Station         string
	Level           int
	Products        string
	Materials       string
	Revenue         float64
	Cost            float64
	Profit          float64
	ProfitPerHour   float64
	DurationSeconds float64

	DisplayRevenue       string
	DisplayCost          string
	DisplayProfit        string
	DisplayProfitPerHour string
	DisplayDuration      string
}

// Compute отсутствующая цена считается нулём, длительность не меньше секунды.
func Compute(locale value.Locale, crafts []entity.Craft, q Query) []Row {
	rows := make([]Row, 0, len(crafts))
	needle := strings.ToLower(q.ItemName)

	for _, c := range crafts {
		if c.Station.NormalizedName != q.StationNormalizedName || c.StationLevel() > q.MaxStationLevel {
			continue
		}

		if needle != "" && !rewardMatches(c.RewardItems, needle) {
			continue
		}

		revenue := total(c.RewardItems)
		cost := total(c.RequiredItems)
		profit := revenue - cost

		if q.ExcludeLoss && profit < 0 {
			continue
		}

		duration := c.Duration()
		perHour := profit * secondsPerHour / duration

		rows = append(rows, Row{
			Station:         c.Station.Name,
			Level:           c.StationLevel(),
			Products:        Chain(c.RewardItems, ", "),
			Materials:       Chain(c.RequiredItems, ", "),
			Revenue:         revenue,
			Cost:            cost,
			Profit:          profit,
			ProfitPerHour:   perHour,
			DurationSeconds: duration,

			DisplayRevenue:       locale.Int(revenue),
			DisplayCost:          locale.Int(cost),
			DisplayProfit:        locale.Price(profit),
			DisplayProfitPerHour: locale.Price(perHour) + "/h",
			DisplayDuration:      fmt.Sprintf("%.0f min", duration/60),
		})
	}

	slices.SortStableFunc(rows, compareBy(q.SortKey))

	return rows
}

func compareBy(key value.SortKey) func(a, b Row) int {
	switch key {
	case value.SortHourly:
		return func(a, b Row) int { return cmp.Compare(b.ProfitPerHour, a.ProfitPerHour) }
	case value.SortTime:
		return func(a, b Row) int { return cmp.Compare(a.DurationSeconds, b.DurationSeconds) }
	default:
		return func(a, b Row) int { return cmp.Compare(b.Profit, a.Profit) }
	}
}

func total(items []entity.ItemCount) float64 {
	var sum float64

	for _, ic := range items {
		sum += price.ScalarPriceOrZero(ic.Item) * ic.Count
	}

	return sum
}

func rewardMatches(rewards []entity.ItemCount, needle string) bool {
	for _, ic := range rewards {
		if strings.Contains(strings.ToLower(itemName(ic.Item)), needle) {
			return true
		}
	}

	return false
}

func itemName(item *entity.Item) string {
	if item == nil {
		return entity.UnknownItemName
	}

	return item.Name
}

// Chain "A x1, B x2" с заданным разделителем.
func Chain(items []entity.ItemCount, sep string) string {
	parts := make([]string, 0, len(items))

	for _, ic := range items {
		parts = append(parts, itemName(ic.Item)+" x"+strconv.FormatFloat(ic.Count, 'f', -1, 64))
	}

	return strings.Join(parts, sep)
}
