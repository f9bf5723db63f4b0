package tarkovdev

import (
	"fmt"
	"strconv"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// flexString принимает число, строку или null. Апстрим отдаёт id квестов
// то числом, то строкой.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	switch x := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = flexString(x)
	case float64:
		*s = flexString(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("flexString: unexpected %T", v)
	}

	return nil
}

type itemsData struct {
	Items *[]itemSchema `json:"items"`
}

type tasksData struct {
	Tasks *[]taskSchema `json:"tasks"`
}

type craftsData struct {
	Crafts *[]craftSchema `json:"crafts"`
}

type namedSchema struct {
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
}

type requirementSchema struct {
	Type  string     `json:"type"`
	Value flexString `json:"value"`
}

func (s requirementSchema) toDomain() (entity.Requirement, bool) {
	switch value.RequirementKind(s.Type) {
	case value.RequirementLoyaltyLevel:
		level, _ := strconv.Atoi(string(s.Value)) //nolint:errcheck
		return entity.LoyaltyRequirement(level), true
	case value.RequirementQuestCompleted:
		return entity.QuestRequirement(string(s.Value)), true
	default:
		return entity.Requirement{}, false
	}
}

type offerSchema struct {
	Price        *float64            `json:"price"`
	Vendor       *namedSchema        `json:"vendor"`
	Requirements []requirementSchema `json:"requirements"`
}

func (s offerSchema) toDomain() entity.VendorOffer {
	offer := entity.VendorOffer{
		Price:        s.Price,
		Requirements: make([]entity.Requirement, 0, len(s.Requirements)),
	}

	if s.Vendor != nil {
		offer.VendorName = s.Vendor.Name
	}

	for _, r := range s.Requirements {
		if req, ok := r.toDomain(); ok {
			offer.Requirements = append(offer.Requirements, req)
		}
	}

	return offer
}

type ammoSchema struct {
	Damage              *float64 `json:"damage"`
	PenetrationPower    *float64 `json:"penetrationPower"`
	FragmentationChance *float64 `json:"fragmentationChance"`
}

// toDomain nil, если это не патрон.
func (s *ammoSchema) toDomain() *entity.AmmoProperties {
	if s == nil || s.Damage == nil || s.PenetrationPower == nil {
		return nil
	}

	props := &entity.AmmoProperties{
		Damage:           *s.Damage,
		PenetrationPower: *s.PenetrationPower,
	}

	if s.FragmentationChance != nil {
		props.FragmentationChance = *s.FragmentationChance
	}

	return props
}

type itemCountSchema struct {
	Count *float64    `json:"count"`
	Item  *itemSchema `json:"item"`
}

func (s itemCountSchema) toDomain() entity.ItemCount {
	ic := entity.ItemCount{Count: 1}

	if s.Count != nil {
		ic.Count = *s.Count
	}

	if s.Item != nil {
		item := s.Item.toDomain()
		ic.Item = &item
	}

	return ic
}

func itemCountsToDomain(in []itemCountSchema) []entity.ItemCount {
	out := make([]entity.ItemCount, 0, len(in))
	for _, s := range in {
		out = append(out, s.toDomain())
	}

	return out
}

type barterSchema struct {
	Trader        *namedSchema      `json:"trader"`
	Level         *int              `json:"level"`
	RequiredItems []itemCountSchema `json:"requiredItems"`
	RewardItems   []itemCountSchema `json:"rewardItems"`
}

func (s barterSchema) toDomain() entity.Barter {
	b := entity.Barter{
		RequiredItems: itemCountsToDomain(s.RequiredItems),
		RewardItems:   itemCountsToDomain(s.RewardItems),
	}

	if s.Trader != nil {
		b.Trader = entity.TraderRef{Name: s.Trader.Name, NormalizedName: s.Trader.NormalizedName}
	}

	if s.Level != nil {
		b.Level = *s.Level
	}

	return b
}

type itemSchema struct {
	Name         string         `json:"name"`
	ShortName    string         `json:"shortName"`
	Avg24hPrice  *float64       `json:"avg24hPrice"`
	BuyFor       []offerSchema  `json:"buyFor"`
	SellFor      []offerSchema  `json:"sellFor"`
	Link         *string        `json:"link"`
	Properties   *ammoSchema    `json:"properties"`
	BartersFor   []barterSchema `json:"bartersFor"`
	BartersUsing []barterSchema `json:"bartersUsing"`
}

func (s itemSchema) toDomain() entity.Item {
	item := entity.Item{
		Name:              s.Name,
		ShortName:         s.ShortName,
		AverageDailyPrice: s.Avg24hPrice,
		BuyOffers:         make([]entity.VendorOffer, 0, len(s.BuyFor)),
		SellOffers:        make([]entity.VendorOffer, 0, len(s.SellFor)),
		Ammo:              s.Properties.toDomain(),
		BartersFor:        make([]entity.Barter, 0, len(s.BartersFor)),
		BartersUsing:      make([]entity.Barter, 0, len(s.BartersUsing)),
	}

	if s.Link != nil {
		item.WikiLink = *s.Link
	}

	for _, o := range s.BuyFor {
		item.BuyOffers = append(item.BuyOffers, o.toDomain())
	}

	for _, o := range s.SellFor {
		item.SellOffers = append(item.SellOffers, o.toDomain())
	}

	for _, b := range s.BartersFor {
		item.BartersFor = append(item.BartersFor, b.toDomain())
	}

	for _, b := range s.BartersUsing {
		item.BartersUsing = append(item.BartersUsing, b.toDomain())
	}

	return item
}

func itemsToDomain(in []itemSchema) []entity.Item {
	out := make([]entity.Item, 0, len(in))
	for _, s := range in {
		out = append(out, s.toDomain())
	}

	return out
}

type objectiveSchema struct {
	Description string      `json:"description"`
	Item        *itemSchema `json:"item"`
	Count       *int        `json:"count"`
	FoundInRaid *bool       `json:"foundInRaid"`
}

func (s objectiveSchema) toDomain() entity.Objective {
	o := entity.Objective{
		Description: s.Description,
		Count:       s.Count,
	}

	if s.Item != nil {
		item := s.Item.toDomain()
		o.Item = &item
	}

	if s.FoundInRaid != nil {
		o.FoundInRaid = *s.FoundInRaid
	}

	return o
}

type taskSchema struct {
	Name           string            `json:"name"`
	TarkovDataID   flexString        `json:"tarkovDataId"`
	MinPlayerLevel *int              `json:"minPlayerLevel"`
	Trader         *namedSchema      `json:"trader"`
	Map            *namedSchema      `json:"map"`
	Objectives     []objectiveSchema `json:"objectives"`
	WikiLink       *string           `json:"wikiLink"`
}

func (s taskSchema) toDomain() entity.Task {
	t := entity.Task{
		Name:           s.Name,
		MinPlayerLevel: s.MinPlayerLevel,
		Objectives:     make([]entity.Objective, 0, len(s.Objectives)),
	}

	if s.TarkovDataID != "" {
		id := string(s.TarkovDataID)
		t.ExternalID = &id
	}

	if s.Trader != nil {
		t.Trader = entity.TraderRef{Name: s.Trader.Name, NormalizedName: s.Trader.NormalizedName}
	}

	if s.Map != nil {
		t.Map = &entity.MapRef{Name: s.Map.Name}
	}

	if s.WikiLink != nil {
		t.WikiLink = *s.WikiLink
	}

	for _, o := range s.Objectives {
		t.Objectives = append(t.Objectives, o.toDomain())
	}

	return t
}

func tasksToDomain(in []taskSchema) []entity.Task {
	out := make([]entity.Task, 0, len(in))
	for _, s := range in {
		out = append(out, s.toDomain())
	}

	return out
}

type craftSchema struct {
	Station       *namedSchema      `json:"station"`
	Level         *int              `json:"level"`
	Duration      *float64          `json:"duration"`
	RewardItems   []itemCountSchema `json:"rewardItems"`
	RequiredItems []itemCountSchema `json:"requiredItems"`
}

func (s craftSchema) toDomain() entity.Craft {
	c := entity.Craft{
		Level:           s.Level,
		DurationSeconds: s.Duration,
		RewardItems:     itemCountsToDomain(s.RewardItems),
		RequiredItems:   itemCountsToDomain(s.RequiredItems),
	}

	if s.Station != nil {
		c.Station = entity.StationRef{Name: s.Station.Name, NormalizedName: s.Station.NormalizedName}
	}

	return c
}

func craftsToDomain(in []craftSchema) []entity.Craft {
	out := make([]entity.Craft, 0, len(in))
	for _, s := range in {
		out = append(out, s.toDomain())
	}

	return out
}
