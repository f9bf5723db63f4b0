// Package catalog строит ценовые панели по поиску и по категории.
package catalog

import (
	"cmp"
	"slices"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/price"
)

type Entry struct {
	Name              string
	FleaPrice         *float64
	BestTrader        *entity.TraderDeal
	BestSell          *entity.VendorOffer
	WikiLink          string
	DisplayFleaPrice  string
	DisplayBestTrader string
	DisplayBestSell   string
}

// Search карточка цены для каждого найденного предмета в порядке ответа.
func Search(resolver price.Resolver, items []entity.Item, quests entity.QuestNames) []Entry {
	locale := resolver.Locale()
	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		resolved := resolver.Resolve(item, quests)
		sell := price.BestSell(item)

		displaySell := price.NoDeal
		if sell != nil {
			displaySell = sell.VendorName + ": " + locale.Price(*sell.Price)
		}

		entries = append(entries, Entry{
			Name:              item.Name,
			FleaPrice:         resolved.FleaPrice,
			BestTrader:        resolved.BestTrader,
			BestSell:          sell,
			WikiLink:          item.WikiLink,
			DisplayFleaPrice:  locale.OptionalPrice(resolved.FleaPrice),
			DisplayBestTrader: resolver.TraderDisplay(resolved.BestTrader),
			DisplayBestSell:   displaySell,
		})
	}

	return entries
}

type Row struct {
	Name               string
	FleaPrice          *float64
	TraderPrice        *float64
	DisplayFleaPrice   string
	DisplayTrader      string
	DisplayTraderPrice string
}

// Category строки категории по цене барахолки по убыванию, без цены в конце.
func Category(resolver price.Resolver, items []entity.Item, quests entity.QuestNames) []Row {
	locale := resolver.Locale()
	rows := make([]Row, 0, len(items))

	for _, item := range items {
		resolved := resolver.Resolve(item, quests)

		row := Row{
			Name:               item.Name,
			FleaPrice:          resolved.FleaPrice,
			DisplayFleaPrice:   locale.OptionalPrice(resolved.FleaPrice),
			DisplayTrader:      price.TraderLabel(resolved.BestTrader),
			DisplayTraderPrice: price.NoDeal,
		}

		if resolved.BestTrader != nil {
			row.TraderPrice = &resolved.BestTrader.Price
			row.DisplayTraderPrice = locale.Price(resolved.BestTrader.Price)
		}

		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Compare(orZero(b.FleaPrice), orZero(a.FleaPrice))
	})

	return rows
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
