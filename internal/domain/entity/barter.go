package entity

import "tarkov_market/internal/domain/value"

// UnknownItemName подставляется, когда апстрим не прислал предмет.
const UnknownItemName = "Unknown"

// Barter бартер в форме ответа API.
type Barter struct {
	Trader        TraderRef
	Level         int
	RequiredItems []ItemCount
	RewardItems   []ItemCount
}

// BarterTrade бартер с точки зрения искомого предмета.
type BarterTrade struct {
	TraderName   string
	LoyaltyLevel int
	Side         value.BarterSide
	Counterparts []Counterpart
}

type Counterpart struct {
	Name  string
	Count float64
}
