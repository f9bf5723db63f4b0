package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"tarkov_market/pkg/errcodes"
)

type RequirementKind string

const (
	RequirementLoyaltyLevel   RequirementKind = "loyaltyLevel"
	RequirementQuestCompleted RequirementKind = "questCompleted"
)

// BarterSide направление бартера относительно искомого предмета.
type BarterSide string

const (
	BarterProduces BarterSide = "produces"
	BarterConsumes BarterSide = "consumes"
)

// SortKey порядок сортировки крафтов.
type SortKey string

const (
	SortProfit SortKey = "profit"
	SortHourly SortKey = "hourly"
	SortTime   SortKey = "time"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortProfit, SortHourly, SortTime:
		return k, nil
	case "":
		return SortProfit, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unsupported sort key %q", s),
			failure.WithCode(errcodes.InvalidSortKey),
			failure.WithDescription("supported sort keys: profit, hourly, time"),
		)
	}
}

// Category категория предметов для ценовой панели.
type Category string

const (
	CategoryAmmo Category = "Ammo"
	CategoryMeds Category = "Meds"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryAmmo, CategoryMeds:
		return c, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unsupported category %q", s),
			failure.WithCode(errcodes.InvalidCategory),
			failure.WithDescription("supported categories: Ammo, Meds"),
		)
	}
}

// AnyMap метка квеста без привязки к карте.
const AnyMap = "Any"

// Normalize приводит имя к виду normalizedName из API: нижний регистр, пробелы в дефисы.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
