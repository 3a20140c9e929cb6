package catalog

import (
	"fmt"
	"strings"
)

// MaxIngredientSlots 目錄記錄固定的食材欄位數
const MaxIngredientSlots = 20

// MealSummary 依食材篩選時回傳的精簡記錄
type MealSummary struct {
	ID        string
	Title     string
	Thumbnail string
}

// RecipeDetail 依 ID 查詢的完整記錄，食材欄位可能有空洞
type RecipeDetail struct {
	ID           string
	Title        string
	Ingredients  [MaxIngredientSlots]string
	Instructions string
	Thumbnail    string
	Category     string
	Tags         string
	Video        string
}

// CompactIngredients 依欄位順序回傳去除空白後的非空食材
func (d *RecipeDetail) CompactIngredients() []string {
	out := make([]string, 0, MaxIngredientSlots)
	for _, slot := range d.Ingredients {
		if s := strings.TrimSpace(slot); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mealsEnvelope 目錄回應外層，meals 可能為 null
type mealsEnvelope struct {
	Meals []map[string]*string `json:"meals"`
}

func field(m map[string]*string, key string) string {
	if v, ok := m[key]; ok && v != nil {
		return *v
	}
	return ""
}

func toSummary(m map[string]*string) MealSummary {
	return MealSummary{
		ID:        field(m, "idMeal"),
		Title:     field(m, "strMeal"),
		Thumbnail: field(m, "strMealThumb"),
	}
}

func toDetail(m map[string]*string) *RecipeDetail {
	d := &RecipeDetail{
		ID:           field(m, "idMeal"),
		Title:        field(m, "strMeal"),
		Instructions: field(m, "strInstructions"),
		Thumbnail:    field(m, "strMealThumb"),
		Category:     field(m, "strCategory"),
		Tags:         field(m, "strTags"),
		Video:        field(m, "strYoutube"),
	}
	for i := 0; i < MaxIngredientSlots; i++ {
		d.Ingredients[i] = field(m, fmt.Sprintf("strIngredient%d", i+1))
	}
	return d
}
