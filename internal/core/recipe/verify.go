package recipe

import (
	"strings"

	"recipe-finder/internal/core/catalog"
	"recipe-finder/internal/core/ingredient"
)

// verifyMatches 回傳在記錄中確實出現的標準化查詢詞，順序與 requested 相同
//
// 食材欄位先標準化再比對，落空時退回說明文字的子字串比對，
// 因此說明中順帶提到的食材也會被算進去。
func verifyMatches(detail *catalog.RecipeDetail, requested []string) []string {
	slots := normalizedSlots(detail)
	instructions := strings.ToLower(detail.Instructions)

	matched := make([]string, 0, len(requested))
	for _, term := range requested {
		if matchesAnySlot(term, slots) || strings.Contains(instructions, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}

// normalizedSlots 標準化後的非空食材欄位
func normalizedSlots(detail *catalog.RecipeDetail) []string {
	raw := detail.CompactIngredients()
	out := make([]string, 0, len(raw))
	for _, slot := range raw {
		if n := ingredient.Normalize(slot); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func matchesAnySlot(term string, slots []string) bool {
	for _, slot := range slots {
		if ingredient.Matches(term, slot) {
			return true
		}
	}
	return false
}
