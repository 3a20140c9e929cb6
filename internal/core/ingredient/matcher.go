package ingredient

import "strings"

// Matches 判斷兩個標準化食材是否指同一種食物
//
// 規則四只在其中一側剛好是基底詞時成立，兩個同屬一組的變體彼此不會匹配。
func Matches(requested, candidate string) bool {
	if requested == "" || candidate == "" {
		return false
	}

	req := strings.ToLower(requested)
	rec := strings.ToLower(candidate)

	if req == rec {
		return true
	}

	if strings.Contains(req, rec) || strings.Contains(rec, req) {
		return true
	}

	if req+"s" == rec || rec+"s" == req {
		return true
	}

	for _, group := range baseVariants {
		if req == group.base && containsAny(rec, group.variants) {
			return true
		}
		if rec == group.base && containsAny(req, group.variants) {
			return true
		}
	}

	return false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
