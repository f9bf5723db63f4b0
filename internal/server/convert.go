package server

import (
	"github.com/samber/lo"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/service/barter"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/service/task"
	"tarkov_market/internal/domain/service/taskitem"
	"tarkov_market/pkg/rest"
)

// NewRESTPanel переводит панель дашборда в модель API. Используется и в tarkovctl --json.
func NewRESTPanel[T, R any](panel dashboard.Panel[T], convert func(T) R) rest.Panel[R] {
	out := rest.Panel[R]{
		Rows: lo.Map(panel.Rows, func(row T, _ int) R { return convert(row) }),
	}

	if panel.Notice != nil {
		out.Notice = &rest.Notice{
			Code:    rest.ErrorCode(panel.Notice.Code),
			Message: panel.Notice.Message,
		}
	}

	return out
}

func NewRESTTraderDeal(deal *entity.TraderDeal) *rest.TraderDeal {
	if deal == nil {
		return nil
	}

	return &rest.TraderDeal{
		Price:        deal.Price,
		Vendor:       deal.VendorName,
		Requirements: deal.RequirementText,
	}
}

func NewRESTAmmo(row ammo.Row) rest.Ammo {
	return rest.Ammo{
		Name:                 row.Name,
		Damage:               row.Damage,
		PenetrationPower:     row.PenetrationPower,
		FragmentationChance:  row.FragmentationChance,
		Price:                row.Price,
		DisplayPrice:         row.DisplayPrice,
		DisplayFragmentation: row.DisplayFragmentation,
	}
}

func NewRESTItemPrice(entry catalog.Entry) rest.ItemPrice {
	out := rest.ItemPrice{
		Name:              entry.Name,
		FleaPrice:         entry.FleaPrice,
		BestTrader:        NewRESTTraderDeal(entry.BestTrader),
		WikiLink:          entry.WikiLink,
		DisplayFleaPrice:  entry.DisplayFleaPrice,
		DisplayBestTrader: entry.DisplayBestTrader,
		DisplayBestSell:   entry.DisplayBestSell,
	}

	if entry.BestSell != nil {
		out.BestSellVendor = entry.BestSell.VendorName
		out.BestSellPrice = entry.BestSell.Price
	}

	return out
}

func NewRESTCategoryItem(row catalog.Row) rest.CategoryItem {
	return rest.CategoryItem{
		Name:               row.Name,
		FleaPrice:          row.FleaPrice,
		TraderPrice:        row.TraderPrice,
		DisplayFleaPrice:   row.DisplayFleaPrice,
		DisplayTrader:      row.DisplayTrader,
		DisplayTraderPrice: row.DisplayTraderPrice,
	}
}

func newRESTBarterTrade(trade entity.BarterTrade, _ int) rest.BarterTrade {
	return rest.BarterTrade{
		Trader:       trade.TraderName,
		LoyaltyLevel: trade.LoyaltyLevel,
		Side:         string(trade.Side),
		Counterparts: lo.Map(trade.Counterparts, func(c entity.Counterpart, _ int) rest.Counterpart {
			return rest.Counterpart{Name: c.Name, Count: c.Count}
		}),
		Label: barter.Label(trade),
		Chain: barter.Chain(trade),
	}
}

func NewRESTBarterItem(entry dashboard.BarterEntry) rest.BarterItem {
	return rest.BarterItem{
		Name:     entry.Name,
		WikiLink: entry.WikiLink,
		Produces: lo.Map(entry.Produces, newRESTBarterTrade),
		Consumes: lo.Map(entry.Consumes, newRESTBarterTrade),
	}
}

func NewRESTTaskItem(row taskitem.Row) rest.TaskItem {
	return rest.TaskItem{
		Name:              row.Name,
		TotalCount:        row.TotalCount,
		FoundInRaidCount:  row.FoundInRaidCount,
		Tasks:             row.Tasks,
		Traders:           row.Traders,
		Price:             row.Price,
		FleaPrice:         row.FleaPrice,
		BestTrader:        NewRESTTraderDeal(row.BestTrader),
		DisplayTraders:    row.DisplayTraders,
		DisplayFleaPrice:  row.DisplayFleaPrice,
		DisplayBestTrader: row.DisplayBestTrader,
	}
}

func NewRESTTask(row task.Row) rest.Task {
	return rest.Task{
		Name:       row.Name,
		Map:        row.Map,
		Objectives: row.Objectives,
		WikiLink:   row.WikiLink,
	}
}

func NewRESTCraft(row craft.Row) rest.Craft {
	return rest.Craft{
		Station:              row.Station,
		Level:                row.Level,
		Products:             row.Products,
		Materials:            row.Materials,
		Revenue:              row.Revenue,
		Cost:                 row.Cost,
		Profit:               row.Profit,
		ProfitPerHour:        row.ProfitPerHour,
		DurationSeconds:      row.DurationSeconds,
		DisplayRevenue:       row.DisplayRevenue,
		DisplayCost:          row.DisplayCost,
		DisplayProfit:        row.DisplayProfit,
		DisplayProfitPerHour: row.DisplayProfitPerHour,
		DisplayDuration:      row.DisplayDuration,
	}
}
