package entity

type Task struct {
	Name           string
	ExternalID     *string
	MinPlayerLevel *int
	Trader         TraderRef
	Map            *MapRef
	Objectives     []Objective
	WikiLink       string
}

type TraderRef struct {
	Name           string
	NormalizedName string
}

type MapRef struct {
	Name string
}

// Objective цель квеста. Item заполнен только у целей на сдачу предметов.
type Objective struct {
	Description string
	Item        *Item
	Count       *int
	FoundInRaid bool
}

// RequiredCount количество к сдаче, по умолчанию 1.
func (o Objective) RequiredCount() int {
	if o.Count == nil {
		return 1
	}

	return *o.Count
}
