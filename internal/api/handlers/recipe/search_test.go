package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-finder/internal/core/queue"
	recipeService "recipe-finder/internal/core/recipe"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	result *recipeService.SearchResult
	err    error
	called bool
	got    []string
}

func (f *fakeSearcher) Search(_ context.Context, raw []string) (*recipeService.SearchResult, error) {
	f.called = true
	f.got = raw
	return f.result, f.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/search", h.HandleSearchByIngredients)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandleSearchByIngredients_Success(t *testing.T) {
	searcher := &fakeSearcher{result: &recipeService.SearchResult{
		IngredientsSearched: []string{"chicken"},
		Recipes: []recipeService.RankedRecipe{{
			ID:                 "1",
			Title:              "Chicken Soup",
			Ingredients:        []string{"chicken"},
			Tags:               []string{},
			MatchedIngredients: []string{"chicken"},
		}},
	}}

	w := serve(NewHandler(searcher, false), `{"ingredients":["chicken"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"chicken"}, searcher.got)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "incomplete")
}

func TestHandleSearchByIngredients_IncompleteZeroResults(t *testing.T) {
	searcher := &fakeSearcher{result: &recipeService.SearchResult{
		IngredientsSearched: []string{"chicken"},
		Recipes:             []recipeService.RankedRecipe{},
		Incomplete:          true,
		Reason:              recipeService.ReasonCancelled,
	}}

	w := serve(NewHandler(searcher, false), `{"ingredients":["chicken"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, true, body["incomplete"])
	assert.Equal(t, recipeService.ReasonCancelled, body["reason"])
	assert.Equal(t, noResultsMessage, body["message"])
	assert.Len(t, body["suggestions"], len(noResultsSuggestions))
}

func TestHandleSearchByIngredients_BlankInputSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{}

	w := serve(NewHandler(searcher, false), `{"ingredients":[" ", ""]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, searcher.called)
}

func TestHandleSearchByIngredients_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		production  bool
		wantStatus  int
		wantMessage bool
	}{
		{name: "queue full", err: fmt.Errorf("search admission: %w", queue.ErrQueueFull), wantStatus: http.StatusServiceUnavailable, wantMessage: true},
		{name: "queue closed", err: queue.ErrClosed, production: true, wantStatus: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantMessage: true},
		{name: "unexpected in development", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: true},
		{name: "unexpected in production", err: errors.New("boom"), production: true, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeSearcher{err: tc.err}, tc.production), `{"ingredients":["chicken"]}`)
			assert.Equal(t, tc.wantStatus, w.Code)

			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
			if tc.wantMessage {
				assert.NotEmpty(t, body["message"])
			} else {
				assert.NotContains(t, body, "message")
			}
		})
	}
}
