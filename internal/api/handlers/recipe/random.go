package recipe

import (
	"net/http"
	"strconv"

	recipeService "recipe-finder/internal/core/recipe"

	"github.com/gin-gonic/gin"
)

// RandomResponse 示範食譜
type RandomResponse struct {
	Success bool                         `json:"success"`
	Count   int                          `json:"count"`
	Recipes []recipeService.RankedRecipe `json:"recipes"`
}

// HandleRandom 回傳示範食譜，:count 無效時使用預設數量
func (h *Handler) HandleRandom(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		count = 0
	}

	recipes := recipeService.SampleRecipes(count)
	c.JSON(http.StatusOK, RandomResponse{
		Success: true,
		Count:   len(recipes),
		Recipes: recipes,
	})
}
