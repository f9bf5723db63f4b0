package entity

type Craft struct {
	Station         StationRef
	Level           *int
	DurationSeconds *float64
	RewardItems     []ItemCount
	RequiredItems   []ItemCount
}

type StationRef struct {
	Name           string
	NormalizedName string
}

// StationLevel уровень станции, по умолчанию 0.
func (c Craft) StationLevel() int {
	if c.Level == nil {
		return 0
	}

	return *c.Level
}

// Duration длительность в секундах, не меньше 1.
func (c Craft) Duration() float64 {
	if c.DurationSeconds == nil || *c.DurationSeconds < 1 {
		return 1
	}

	return *c.DurationSeconds
}
