package recipe

import (
	"strings"

	"recipe-finder/internal/core/catalog"
)

const (
	untitledRecipe  = "Untitled Recipe"
	defaultCategory = "General"

	defaultMinutes = 30
	minMinutes     = 15
	maxMinutes     = 120
	baseMinutes    = 20

	easyWordLimit = 80
	hardWordLimit = 200
)

// Format 將目錄記錄轉成輸出格式，食材保留完整清單，顯示上限由呼叫端處理
func Format(detail *catalog.RecipeDetail) RankedRecipe {
	ingredients := detail.CompactIngredients()

	title := strings.TrimSpace(detail.Title)
	if title == "" {
		title = untitledRecipe
	}
	category := strings.TrimSpace(detail.Category)
	if category == "" {
		category = defaultCategory
	}

	return RankedRecipe{
		ID:                 detail.ID,
		Title:              title,
		Ingredients:        ingredients,
		Image:              detail.Thumbnail,
		Time:               EstimateTime(detail.Instructions, len(ingredients)),
		Difficulty:         EstimateDifficulty(detail.Instructions),
		Category:           category,
		Instructions:       detail.Instructions,
		Tags:               splitTags(detail.Tags),
		Video:              detail.Video,
		MatchedIngredients: []string{},
	}
}

// EstimateTime 依食材數與說明字數估算分鐘數，範圍 15 到 120
func EstimateTime(instructions string, ingredientCount int) int {
	words := len(strings.Fields(instructions))
	if words == 0 {
		return defaultMinutes
	}

	minutes := baseMinutes + ingredientCount + words/10
	if minutes < minMinutes {
		return minMinutes
	}
	if minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}

// EstimateDifficulty 依說明字數估算難度
func EstimateDifficulty(instructions string) Difficulty {
	words := len(strings.Fields(instructions))
	switch {
	case words == 0:
		return DifficultyMedium
	case words < easyWordLimit:
		return DifficultyEasy
	case words > hardWordLimit:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
