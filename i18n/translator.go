package i18n

import "strings"

// Translator retrieves localized messages for validation codes.
// data provides the values substituted into the message template (for
// example "field", "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct {
	lang  string
	texts map[string]string
}

var english = map[string]string{
	"1001": "{field} is shorter than the minimum length of {min}",
	"1002": "{field} exceeds the maximum length of {max}",
	"1003": "{field} is less than the minimum value of {min}",
	"1004": "{field} exceeds the maximum value of {max}",
	"1005": "{field} does not match the required pattern",
	"1006": "{field} is not one of the allowed codes",
	"1007": "{field} must carry exactly one alternative",
	"9999": "Unknown document type",
}

var japanese = map[string]string{
	"1001": "{field} は最小長 {min} より短いです",
	"1002": "{field} は最大長 {max} を超えています",
	"1003": "{field} は最小値 {min} 未満です",
	"1004": "{field} は最大値 {max} を超えています",
	"1005": "{field} が必要なパターンに一致しません",
	"1006": "{field} は許可されたコードではありません",
	"1007": "{field} はちょうど一つの選択肢を持つ必要があります",
	"9999": "不明なドキュメント種別です",
}

// English returns the default Translator.
func English() Translator { return dictTranslator{lang: "en", texts: english} }

// Japanese returns a Translator rendering messages in Japanese.
func Japanese() Translator { return dictTranslator{lang: "ja", texts: japanese} }

// For returns the built-in Translator for lang ("en"/"ja"). Unknown languages
// fall back to English.
func For(lang string) Translator {
	if strings.EqualFold(lang, "ja") {
		return Japanese()
	}
	return English()
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := t.texts[code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
