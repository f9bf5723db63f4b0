// Package price выбирает лучшие цены предмета на барахолке и у торговцев.
package price

import (
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// NoDeal отображение отсутствующей сделки.
const NoDeal = "-"

type Resolver struct {
	locale value.Locale
}

func NewResolver(locale value.Locale) Resolver {
	return Resolver{locale: locale}
}

func (r Resolver) Locale() value.Locale {
	return r.locale
}

// Resolve цена барахолки и самая дешёвая сделка у торговца.
// quests может быть nil, тогда квестовые условия выводятся заглушкой.
func (r Resolver) Resolve(item entity.Item, quests entity.QuestNames) entity.ResolvedPrice {
	resolved := entity.ResolvedPrice{
		FleaPrice: fleaPrice(item),
	}

	if best := bestTraderOffer(item.BuyOffers); best != nil {
		resolved.BestTrader = &entity.TraderDeal{
			Price:           *best.Price,
			VendorName:      best.VendorName,
			RequirementText: FormatRequirements(r.locale, best.Requirements, quests),
		}
	}

	return resolved
}

// ScalarPrice одно число для расчётов: средняя цена, затем барахолка, затем торговец.
func ScalarPrice(item entity.Item) *float64 {
	if item.AverageDailyPrice != nil {
		return item.AverageDailyPrice
	}

	if flea := fleaPrice(item); flea != nil && *flea != 0 {
		return flea
	}

	if best := bestTraderOffer(item.BuyOffers); best != nil {
		return best.Price
	}

	return nil
}

// ScalarPriceOrZero ScalarPrice, где отсутствующая цена равна 0.
func ScalarPriceOrZero(item *entity.Item) float64 {
	if item == nil {
		return 0
	}

	if p := ScalarPrice(*item); p != nil {
		return *p
	}

	return 0
}

// BestSell самое дорогое предложение на продажу с известной ценой.
func BestSell(item entity.Item) *entity.VendorOffer {
	var best *entity.VendorOffer

	for i := range item.SellOffers {
		offer := &item.SellOffers[i]
		if offer.Price == nil {
			continue
		}

		if best == nil || *offer.Price > *best.Price {
			best = offer
		}
	}

	return best
}

// TraderLabel "Торговец (условия)" или NoDeal.
func TraderLabel(deal *entity.TraderDeal) string {
	if deal == nil {
		return NoDeal
	}

	if deal.RequirementText == "" {
		return deal.VendorName
	}

	return deal.VendorName + " (" + deal.RequirementText + ")"
}

// TraderDisplay "Торговец (условия): цена" или NoDeal.
func (r Resolver) TraderDisplay(deal *entity.TraderDeal) string {
	if deal == nil {
		return NoDeal
	}

	return TraderLabel(deal) + ": " + r.locale.Price(deal.Price)
}

func fleaPrice(item entity.Item) *float64 {
	for _, offer := range item.BuyOffers {
		if offer.IsFleaMarket() {
			return offer.Price
		}
	}

	return item.AverageDailyPrice
}

// bestTraderOffer первый минимум среди торговцев с известной ценой.
func bestTraderOffer(offers []entity.VendorOffer) *entity.VendorOffer {
	var best *entity.VendorOffer

	for i := range offers {
		offer := &offers[i]
		if offer.IsFleaMarket() || offer.Price == nil {
			continue
		}

		if best == nil || *offer.Price < *best.Price {
			best = offer
		}
	}

	return best
}
