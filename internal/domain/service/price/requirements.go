package price

import (
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// FormatRequirements выводит условия сделки через ", " в исходном порядке.
// Неизвестный квест выводится заглушкой, сырой id не показывается.
func FormatRequirements(locale value.Locale, reqs []entity.Requirement, quests entity.QuestNames) string {
	parts := make([]string, 0, len(reqs))

	for _, req := range reqs {
		switch req.Kind {
		case value.RequirementLoyaltyLevel:
			parts = append(parts, locale.Text(value.KeyLoyaltyLevel, req.Level))
		case value.RequirementQuestCompleted:
			if name, ok := quests[req.QuestID]; ok {
				parts = append(parts, name)
			} else {
				parts = append(parts, locale.Text(value.KeyQuestPlaceholder))
			}
		}
	}

	return strings.Join(parts, ", ")
}
