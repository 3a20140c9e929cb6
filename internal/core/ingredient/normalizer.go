// Package ingredient canonicalizes, translates and compares free-text
// ingredient names.
package ingredient

import (
	"regexp"
	"strings"
)

var descriptorPattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(descriptorWords, "|") + `)\b`)

// Normalize 將原始食材字串轉成比對用的標準詞
//
// 依序：小寫去空白、移除描述詞、套用複合詞替換表、多字詞保留受保護片語或取第一個字。
// 空白輸入回傳空字串，呼叫端需自行過濾。
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = descriptorPattern.ReplaceAllString(s, "")
	words := strings.Fields(s)
	s = strings.Join(words, " ")

	for _, sub := range compoundSubstitutions {
		if strings.Contains(s, sub.compound) {
			return sub.base
		}
	}

	if len(words) > 1 {
		for _, compound := range protectedCompounds {
			if strings.Contains(s, compound) {
				return compound
			}
		}
		return words[0]
	}

	return s
}

// NormalizeAll 標準化並去除空白與重複，保留輸入順序
func NormalizeAll(raws []string) []string {
	out := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		n := Normalize(raw)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
