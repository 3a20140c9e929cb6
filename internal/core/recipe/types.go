package recipe

import "recipe-finder/internal/core/catalog"

// Difficulty 食譜難度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Candidate 篩選階段找到的候選食譜
type Candidate struct {
	Summary catalog.MealSummary
	// Sources 觸發此候選的查詢詞，依首次出現順序且不重複
	Sources []string
}

func (c *Candidate) addSource(term string) {
	for _, s := range c.Sources {
		if s == term {
			return
		}
	}
	c.Sources = append(c.Sources, term)
}

// RankedRecipe 回傳給客戶端的食譜
type RankedRecipe struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Ingredients        []string   `json:"ingredients"`
	Image              string     `json:"image"`
	Time               int        `json:"time"`
	Difficulty         Difficulty `json:"difficulty"`
	Category           string     `json:"category"`
	Instructions       string     `json:"instructions"`
	Tags               []string   `json:"tags"`
	Video              string     `json:"video,omitempty"`
	MatchedIngredients []string   `json:"matchedIngredients"`
}

// SearchResult 一次搜尋的結果
//
// Incomplete 表示結果因目錄故障或取消而不完整，Reason 說明原因。
type SearchResult struct {
	Recipes             []RankedRecipe
	IngredientsSearched []string
	Incomplete          bool
	Reason              string
}
