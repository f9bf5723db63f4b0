package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"golang.org/x/text/language"

	"tarkov_market/pkg/errcodes"
)

// Language язык ответа API и шаблонов отображения.
type Language string

const (
	LanguageJA Language = "ja"
	LanguageEN Language = "en"
)

// DefaultLanguage используется, если язык не передан.
const DefaultLanguage = LanguageJA

func ParseLanguage(s string) (Language, error) {
	switch l := Language(s); l {
	case LanguageJA, LanguageEN:
		return l, nil
	case "":
		return DefaultLanguage, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unsupported language %q", s),
			failure.WithCode(errcodes.InvalidLanguage),
			failure.WithDescription("supported languages: ja, en"),
		)
	}
}

func (l Language) String() string {
	return string(l)
}

// Tag тег x/text для форматирования чисел.
func (l Language) Tag() language.Tag {
	if l == LanguageJA {
		return language.Japanese
	}

	return language.English
}
