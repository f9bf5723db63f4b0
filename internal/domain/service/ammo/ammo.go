// Package ammo фильтрует патроны по порогам и сортирует по бронепробитию.
package ammo

import (
	"cmp"
	"fmt"
	"slices"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/internal/domain/value"
)

type Filter struct {
	MinPenetration float64
	MinDamage      float64
}

type Row struct {
	Name                 string
	Damage               float64
	PenetrationPower     float64
	FragmentationChance  float64
	Price                *float64
	DisplayPrice         string
	DisplayFragmentation string
}

// Apply отбрасывает предметы без баллистики и ниже порогов.
// Сортировка по бронепробитию по убыванию, равные сохраняют исходный порядок.
func Apply(locale value.Locale, items []entity.Item, filter Filter) []Row {
	rows := make([]Row, 0, len(items))

	for _, item := range items {
		props := item.Ammo
		if props == nil {
			continue
		}

		if props.Damage < filter.MinDamage || props.PenetrationPower < filter.MinPenetration {
			continue
		}

		scalar := price.ScalarPrice(item)

		rows = append(rows, Row{
			Name:                 item.Name,
			Damage:               props.Damage,
			PenetrationPower:     props.PenetrationPower,
			FragmentationChance:  props.FragmentationChance,
			Price:                scalar,
			DisplayPrice:         locale.OptionalPrice(scalar),
			DisplayFragmentation: fmt.Sprintf("%.0f%%", props.FragmentationChance*100),
		})
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Compare(b.PenetrationPower, a.PenetrationPower)
	})

	return rows
}
