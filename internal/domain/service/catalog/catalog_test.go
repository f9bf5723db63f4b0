package catalog_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/price"
	"tarkov_market/internal/domain/value"
)

func TestSearch(t *testing.T) {
	rq := require.New(t)

	resolver := price.NewResolver(value.DefaultLocale(value.LanguageEN))

	items := []entity.Item{
		{
			Name:     "LEDX Skin Transilluminator",
			WikiLink: "https://escapefromtarkov.fandom.com/wiki/LEDX_Skin_Transilluminator",
			BuyOffers: []entity.VendorOffer{
				{Price: lo.ToPtr(950000.0), VendorName: entity.FleaMarketVendor},
				{
					Price:        lo.ToPtr(1100000.0),
					VendorName:   "Therapist",
					Requirements: []entity.Requirement{entity.LoyaltyRequirement(4)},
				},
			},
			SellOffers: []entity.VendorOffer{
				{Price: lo.ToPtr(600000.0), VendorName: "Therapist"},
				{Price: lo.ToPtr(500000.0), VendorName: "Fence"},
			},
		},
		{Name: "Dogtag"},
	}

	entries := catalog.Search(resolver, items, nil)

	rq.Len(entries, 2)
	rq.Equal("950,000 ₽", entries[0].DisplayFleaPrice)
	rq.Equal("Therapist (Loyalty Level 4): 1,100,000 ₽", entries[0].DisplayBestTrader)
	rq.Equal("Therapist: 600,000 ₽", entries[0].DisplayBestSell)
	rq.Equal(items[0].WikiLink, entries[0].WikiLink)

	rq.Equal("Not sold", entries[1].DisplayFleaPrice)
	rq.Equal(price.NoDeal, entries[1].DisplayBestTrader)
	rq.Equal(price.NoDeal, entries[1].DisplayBestSell)
}

func TestCategory(t *testing.T) {
	rq := require.New(t)

	resolver := price.NewResolver(value.DefaultLocale(value.LanguageEN))

	items := []entity.Item{
		{Name: "AI-2", AverageDailyPrice: lo.ToPtr(4000.0)},
		{Name: "Unsold"},
		{
			Name:              "Salewa",
			AverageDailyPrice: lo.ToPtr(21000.0),
			BuyOffers: []entity.VendorOffer{
				{Price: lo.ToPtr(18000.0), VendorName: "Therapist"},
			},
		},
		{Name: "Also unsold"},
	}

	rows := catalog.Category(resolver, items, nil)

	rq.Equal(
		[]string{"Salewa", "AI-2", "Unsold", "Also unsold"},
		lo.Map(rows, func(r catalog.Row, _ int) string { return r.Name }),
	)
	rq.Equal("Therapist", rows[0].DisplayTrader)
	rq.Equal("18,000 ₽", rows[0].DisplayTraderPrice)
	rq.Equal(price.NoDeal, rows[1].DisplayTrader)
	rq.Equal(price.NoDeal, rows[1].DisplayTraderPrice)
}
