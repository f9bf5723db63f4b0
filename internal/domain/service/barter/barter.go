// Package barter раскладывает бартеры предмета на получение и расход.
package barter

import (
	"strconv"
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

type Result struct {
	Produces []entity.BarterTrade
	Consumes []entity.BarterTrade
}

// Empty у предмета нет бартеров. Это не ошибка.
func (r Result) Empty() bool {
	return len(r.Produces) == 0 && len(r.Consumes) == 0
}

// Flatten Produces строится из BartersFor по требуемым предметам,
// Consumes из BartersUsing по наградам. Пропавший предмет становится "Unknown".
func Flatten(item entity.Item) Result {
	return Result{
		Produces: trades(item.BartersFor, value.BarterProduces),
		Consumes: trades(item.BartersUsing, value.BarterConsumes),
	}
}

func trades(barters []entity.Barter, side value.BarterSide) []entity.BarterTrade {
	out := make([]entity.BarterTrade, 0, len(barters))

	for _, b := range barters {
		items := b.RequiredItems
		if side == value.BarterConsumes {
			items = b.RewardItems
		}

		counterparts := make([]entity.Counterpart, 0, len(items))

		for _, ic := range items {
			name := entity.UnknownItemName
			if ic.Item != nil {
				name = ic.Item.Name
			}

			counterparts = append(counterparts, entity.Counterpart{Name: name, Count: ic.Count})
		}

		out = append(out, entity.BarterTrade{
			TraderName:   b.Trader.Name,
			LoyaltyLevel: b.Level,
			Side:         side,
			Counterparts: counterparts,
		})
	}

	return out
}

// Chain "A x1 + B x2".
func Chain(trade entity.BarterTrade) string {
	parts := make([]string, 0, len(trade.Counterparts))

	for _, c := range trade.Counterparts {
		parts = append(parts, c.Name+" x"+strconv.FormatFloat(c.Count, 'f', -1, 64))
	}

	return strings.Join(parts, " + ")
}

// Label "Trader (LL2)".
func Label(trade entity.BarterTrade) string {
	return trade.TraderName + " (LL" + strconv.Itoa(trade.LoyaltyLevel) + ")"
}
