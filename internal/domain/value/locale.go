package value

import (
	"fmt"
	"math"
	"os"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"tarkov_market/pkg/errcodes"
)

// TemplateKey ключ шаблона отображения.
type TemplateKey string

const (
	KeyLoyaltyLevel     TemplateKey = "loyalty_level"
	KeyQuestPlaceholder TemplateKey = "quest_requirement"
	KeyNotSold          TemplateKey = "not_sold"
	KeyPrice            TemplateKey = "price"
)

var defaultTemplates = map[Language]map[TemplateKey]string{ //nolint:gochecknoglobals // skip
	LanguageJA: {
		KeyLoyaltyLevel:     "信頼度 Lv.%d",
		KeyQuestPlaceholder: "タスク完了が必要",
		KeyNotSold:          "販売なし",
		KeyPrice:            "%s ₽",
	},
	LanguageEN: {
		KeyLoyaltyLevel:     "Loyalty Level %d",
		KeyQuestPlaceholder: "Quest requirement",
		KeyNotSold:          "Not sold",
		KeyPrice:            "%s ₽",
	},
}

// Locale явная конфигурация отображения: язык и таблица шаблонов.
// Передаётся в функции форматирования, глобального состояния нет.
type Locale struct {
	Language  Language
	Templates map[TemplateKey]string
	printer   *message.Printer
}

func NewLocale(lang Language, templates map[TemplateKey]string) Locale {
	merged := make(map[TemplateKey]string, len(defaultTemplates[LanguageEN]))

	for k, v := range defaultTemplates[LanguageEN] {
		merged[k] = v
	}

	for k, v := range defaultTemplates[lang] {
		merged[k] = v
	}

	for k, v := range templates {
		merged[k] = v
	}

	return Locale{
		Language:  lang,
		Templates: merged,
		printer:   message.NewPrinter(lang.Tag()),
	}
}

func DefaultLocale(lang Language) Locale {
	return NewLocale(lang, nil)
}

func (l Locale) Text(key TemplateKey, args ...any) string {
	tmpl, ok := l.Templates[key]
	if !ok {
		return string(key)
	}

	if len(args) == 0 {
		return tmpl
	}

	return fmt.Sprintf(tmpl, args...)
}

// Int целая часть с разделителями тысяч: 1234.9 -> "1,234".
func (l Locale) Int(v float64) string {
	p := l.printer
	if p == nil {
		p = message.NewPrinter(l.Language.Tag())
	}

	return p.Sprintf("%d", int64(math.Trunc(v)))
}

// Price цена с валютой: "1,234 ₽".
func (l Locale) Price(v float64) string {
	return l.Text(KeyPrice, l.Int(v))
}

// OptionalPrice цена или шаблон "не продаётся".
func (l Locale) OptionalPrice(v *float64) string {
	if v == nil {
		return l.Text(KeyNotSold)
	}

	return l.Price(*v)
}

// Locales шаблоны для всех языков.
type Locales map[Language]Locale

func DefaultLocales() Locales {
	return Locales{
		LanguageJA: DefaultLocale(LanguageJA),
		LanguageEN: DefaultLocale(LanguageEN),
	}
}

func (ls Locales) Get(lang Language) Locale {
	if l, ok := ls[lang]; ok {
		return l
	}

	return DefaultLocale(lang)
}

// LoadLocales читает переопределения шаблонов из YAML вида
//
//	en:
//	  not_sold: "-"
//
// Пустой путь означает шаблоны по умолчанию.
func LoadLocales(path string) (Locales, error) {
	locales := DefaultLocales()

	if path == "" {
		return locales, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return ParseLocales(raw)
}

func ParseLocales(raw []byte) (Locales, error) {
	var overrides map[string]map[string]string

	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("yaml.Unmarshal: %w", err).Error(),
			failure.WithCode(errcodes.InvalidLocaleFile),
			failure.WithDescription(err.Error()),
		)
	}

	locales := DefaultLocales()

	for rawLang, templates := range overrides {
		lang, err := ParseLanguage(strings.TrimSpace(rawLang))
		if err != nil {
			return nil, fmt.Errorf("ParseLanguage: %w", err)
		}

		converted := make(map[TemplateKey]string, len(templates))
		for k, v := range templates {
			converted[TemplateKey(k)] = v
		}

		locales[lang] = NewLocale(lang, converted)
	}

	return locales, nil
}
