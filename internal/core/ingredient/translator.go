package ingredient

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Translator 將西班牙文食材名稱轉為目錄的英文詞彙
//
// 建立後唯讀，可在多個 goroutine 間共用。
type Translator struct {
	dictionary map[string]string
	compounds  map[string]string
	ignored    map[string]struct{}
}

// NewTranslator 以內建詞典建立翻譯器，key 皆已去除重音
func NewTranslator() *Translator {
	t := &Translator{
		dictionary: make(map[string]string, len(spanishToEnglish)),
		compounds:  make(map[string]string, len(compoundToSimple)),
		ignored:    make(map[string]struct{}, len(ignoredWords)),
	}
	for k, v := range spanishToEnglish {
		t.dictionary[foldAccents(k)] = v
	}
	for k, v := range compoundToSimple {
		t.compounds[foldAccents(k)] = v
	}
	for _, w := range ignoredWords {
		t.ignored[w] = struct{}{}
	}
	return t
}

// Translate 回傳目錄查詢用的詞，找不到對應時原樣（小寫、整理空白）回傳
func (t *Translator) Translate(raw string) string {
	cleaned := strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(raw))), " ")
	if cleaned == "" {
		return ""
	}

	key := foldAccents(cleaned)
	if simple, ok := t.compounds[key]; ok {
		return simple
	}
	if english, ok := t.dictionary[key]; ok {
		return english
	}

	for _, word := range strings.Fields(key) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, skip := t.ignored[word]; skip {
			continue
		}
		if english, ok := t.dictionary[word]; ok {
			return english
		}
	}

	return cleaned
}

// TranslateAll 逐一翻譯
func (t *Translator) TranslateAll(raws []string) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = t.Translate(raw)
	}
	return out
}

func foldAccents(s string) string {
	// transform.Chain 有狀態，每次呼叫重新建立
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return out
}
