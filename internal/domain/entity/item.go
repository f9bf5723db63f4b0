package entity

// FleaMarketVendor зарезервированное имя продавца для открытого рынка.
const FleaMarketVendor = "Flea Market"

// Item снимок предмета из одного ответа API. Идентичность только по имени.
type Item struct {
	Name              string
	ShortName         string
	AverageDailyPrice *float64
	BuyOffers         []VendorOffer
	SellOffers        []VendorOffer
	WikiLink          string
	Ammo              *AmmoProperties
	BartersFor        []Barter
	BartersUsing      []Barter
}

type AmmoProperties struct {
	Damage              float64
	PenetrationPower    float64
	FragmentationChance float64
}

// VendorOffer предложение торговца или барахолки. Price может отсутствовать.
type VendorOffer struct {
	Price        *float64
	VendorName   string
	Requirements []Requirement
}

func (o VendorOffer) IsFleaMarket() bool {
	return o.VendorName == FleaMarketVendor
}

// ItemCount пара предмет/количество. Item бывает nil, если апстрим не прислал ссылку.
type ItemCount struct {
	Item  *Item
	Count float64
}
