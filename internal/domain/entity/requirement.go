package entity

import "tarkov_market/internal/domain/value"

// Requirement условие разблокировки сделки у торговца.
// Для LoyaltyLevel заполнен Level, для QuestCompleted заполнен QuestID.
type Requirement struct {
	Kind    value.RequirementKind
	Level   int
	QuestID string
}

func LoyaltyRequirement(level int) Requirement {
	return Requirement{Kind: value.RequirementLoyaltyLevel, Level: level}
}

func QuestRequirement(questID string) Requirement {
	return Requirement{Kind: value.RequirementQuestCompleted, QuestID: questID}
}

// QuestNames отображение внешнего id квеста в локализованное имя.
type QuestNames map[string]string

// ResolvedPrice лучшие цены предмета на барахолке и у торговцев.
type ResolvedPrice struct {
	FleaPrice  *float64
	BestTrader *TraderDeal
}

type TraderDeal struct {
	Price           float64
	VendorName      string
	RequirementText string
}
