// Package rest описывает модели HTTP API.
package rest

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

func (e *Error) WithDefaultCode(code string) {
	if e.Code == "" {
		e.Code = ErrorCode(code)
	}
}

// ErrorCode Код ошибки
type ErrorCode string

// Notice Уведомление панели о сбое загрузки данных
type Notice struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Panel Ответ панели дашборда. При сбое Rows пустой, а Notice заполнен.
type Panel[T any] struct {
	Rows   []T     `json:"rows"`
	Notice *Notice `json:"notice,omitempty"`
}

// TraderDeal Лучшая сделка у торговца
type TraderDeal struct {
	Price        float64 `json:"price"`
	Vendor       string  `json:"vendor"`
	Requirements string  `json:"requirements"`
}

// Ammo Строка таблицы патронов
type Ammo struct {
	Name                 string   `json:"name"`
	Damage               float64  `json:"damage"`
	PenetrationPower     float64  `json:"penetrationPower"`
	FragmentationChance  float64  `json:"fragmentationChance"`
	Price                *float64 `json:"price"`
	DisplayPrice         string   `json:"displayPrice"`
	DisplayFragmentation string   `json:"displayFragmentation"`
}

// ItemPrice Карточка цены предмета
type ItemPrice struct {
	Name              string      `json:"name"`
	FleaPrice         *float64    `json:"fleaPrice"`
	BestTrader        *TraderDeal `json:"bestTrader"`
	BestSellVendor    string      `json:"bestSellVendor,omitempty"`
	BestSellPrice     *float64    `json:"bestSellPrice"`
	WikiLink          string      `json:"wikiLink,omitempty"`
	DisplayFleaPrice  string      `json:"displayFleaPrice"`
	DisplayBestTrader string      `json:"displayBestTrader"`
	DisplayBestSell   string      `json:"displayBestSell"`
}

// CategoryItem Строка ценовой таблицы категории
type CategoryItem struct {
	Name               string   `json:"name"`
	FleaPrice          *float64 `json:"fleaPrice"`
	TraderPrice        *float64 `json:"traderPrice"`
	DisplayFleaPrice   string   `json:"displayFleaPrice"`
	DisplayTrader      string   `json:"displayTrader"`
	DisplayTraderPrice string   `json:"displayTraderPrice"`
}

// Counterpart Предмет и количество в бартере
type Counterpart struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// BarterTrade Бартер относительно искомого предмета
type BarterTrade struct {
	Trader       string        `json:"trader"`
	LoyaltyLevel int           `json:"loyaltyLevel"`
	Side         string        `json:"side"`
	Counterparts []Counterpart `json:"counterparts"`
	Label        string        `json:"label"`
	Chain        string        `json:"chain"`
}

// BarterItem Бартеры найденного предмета
type BarterItem struct {
	Name     string        `json:"name"`
	WikiLink string        `json:"wikiLink,omitempty"`
	Produces []BarterTrade `json:"produces"`
	Consumes []BarterTrade `json:"consumes"`
}

// TaskItem Строка таблицы предметов для квестов
type TaskItem struct {
	Name              string      `json:"name"`
	TotalCount        int         `json:"totalCount"`
	FoundInRaidCount  int         `json:"foundInRaidCount"`
	Tasks             []string    `json:"tasks"`
	Traders           []string    `json:"traders"`
	Price             *float64    `json:"price"`
	FleaPrice         *float64    `json:"fleaPrice"`
	BestTrader        *TraderDeal `json:"bestTrader"`
	DisplayTraders    string      `json:"displayTraders"`
	DisplayFleaPrice  string      `json:"displayFleaPrice"`
	DisplayBestTrader string      `json:"displayBestTrader"`
}

// Task Квест
type Task struct {
	Name       string   `json:"name"`
	Map        string   `json:"map"`
	Objectives []string `json:"objectives"`
	WikiLink   string   `json:"wikiLink,omitempty"`
}

// Craft Строка таблицы крафтов
type Craft struct {
	Station              string  `json:"station"`
	Level                int     `json:"level"`
	Products             string  `json:"products"`
	Materials            string  `json:"materials"`
	Revenue              float64 `json:"revenue"`
	Cost                 float64 `json:"cost"`
	Profit               float64 `json:"profit"`
	ProfitPerHour        float64 `json:"profitPerHour"`
	DurationSeconds      float64 `json:"durationSeconds"`
	DisplayRevenue       string  `json:"displayRevenue"`
	DisplayCost          string  `json:"displayCost"`
	DisplayProfit        string  `json:"displayProfit"`
	DisplayProfitPerHour string  `json:"displayProfitPerHour"`
	DisplayDuration      string  `json:"displayDuration"`
}
