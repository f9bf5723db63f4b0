// Package task отбирает квесты торговца по карте, уровню и тексту.
package task

import (
	"slices"
	"strings"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

type Filter struct {
	TraderNormalizedName string
	Maps                 []string
	MaxPlayerLevel       int
	Text                 string
}

// Apply сохраняет исходный порядок. Все условия объединяются через И.
func Apply(tasks []entity.Task, filter Filter) []entity.Task {
	out := make([]entity.Task, 0, len(tasks))
	needle := strings.ToLower(filter.Text)
	anyMap := len(filter.Maps) == 0 || slices.Contains(filter.Maps, value.AnyMap)

	for _, t := range tasks {
		if t.Trader.NormalizedName != filter.TraderNormalizedName {
			continue
		}

		if !anyMap && !slices.Contains(filter.Maps, MapName(t)) {
			continue
		}

		if minLevel(t) > filter.MaxPlayerLevel {
			continue
		}

		if needle != "" && !matches(t, needle) {
			continue
		}

		out = append(out, t)
	}

	return out
}

// MapName имя карты или "Any", если квест не привязан к карте.
func MapName(t entity.Task) string {
	if t.Map == nil {
		return value.AnyMap
	}

	return t.Map.Name
}

func minLevel(t entity.Task) int {
	if t.MinPlayerLevel == nil {
		return 0
	}

	return *t.MinPlayerLevel
}

func matches(t entity.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}

	for _, o := range t.Objectives {
		if strings.Contains(strings.ToLower(o.Description), needle) {
			return true
		}
	}

	return false
}

type Row struct {
	Name       string
	Map        string
	Objectives []string
	WikiLink   string
}

func Rows(tasks []entity.Task) []Row {
	rows := make([]Row, 0, len(tasks))

	for _, t := range tasks {
		objectives := make([]string, 0, len(t.Objectives))
		for _, o := range t.Objectives {
			objectives = append(objectives, o.Description)
		}

		rows = append(rows, Row{
			Name:       t.Name,
			Map:        MapName(t),
			Objectives: objectives,
			WikiLink:   t.WikiLink,
		})
	}

	return rows
}
