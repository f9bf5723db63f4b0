// Package taskitem сводит цели квестов на сдачу предметов в таблицу спроса.
package taskitem

import (
	"cmp"
	"slices"
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/pkg/lox"
)

type Row struct {
	Name             string
	TotalCount       int
	FoundInRaidCount int
	Tasks            []string
	Traders          []string
	Price            *float64
	FleaPrice        *float64
	BestTrader       *entity.TraderDeal

	DisplayTraders    string
	DisplayFleaPrice  string
	DisplayBestTrader string
}

type accumulator struct {
	item    entity.Item
	total   int
	fir     int
	tasks   lox.Set[string]
	traders lox.Set[string]
}

// Aggregate одна строка на имя предмета. Цена считается по первому встреченному экземпляру.
// Сортировка: общее количество по убыванию, затем цена по убыванию.
func Aggregate(resolver price.Resolver, tasks []entity.Task, quests entity.QuestNames) []Row {
	byName := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, t := range tasks {
		for _, o := range t.Objectives {
			if o.Item == nil {
				continue
			}

			acc, ok := byName[o.Item.Name]
			if !ok {
				acc = &accumulator{
					item:    *o.Item,
					tasks:   lox.NewSet[string](),
					traders: lox.NewSet[string](),
				}
				byName[o.Item.Name] = acc
				order = append(order, o.Item.Name)
			}

			count := o.RequiredCount()

			acc.total += count
			if o.FoundInRaid {
				acc.fir += count
			}

			acc.tasks.Add(t.Name)
			acc.traders.Add(t.Trader.Name)
		}
	}

	locale := resolver.Locale()
	rows := make([]Row, 0, len(order))

	for _, name := range order {
		acc := byName[name]
		resolved := resolver.Resolve(acc.item, quests)
		traders := acc.traders.Sorted()

		rows = append(rows, Row{
			Name:             name,
			TotalCount:       acc.total,
			FoundInRaidCount: acc.fir,
			Tasks:            acc.tasks.Sorted(),
			Traders:          traders,
			Price:            price.ScalarPrice(acc.item),
			FleaPrice:        resolved.FleaPrice,
			BestTrader:       resolved.BestTrader,

			DisplayTraders:    strings.Join(traders, ", "),
			DisplayFleaPrice:  locale.OptionalPrice(resolved.FleaPrice),
			DisplayBestTrader: resolver.TraderDisplay(resolved.BestTrader),
		})
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.TotalCount, a.TotalCount); c != 0 {
			return c
		}

		return cmp.Compare(orZero(b.Price), orZero(a.Price))
	})

	return rows
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
