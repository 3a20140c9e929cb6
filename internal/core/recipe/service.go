// Package recipe finds catalog recipes that really contain the requested
// ingredients and shapes them for the client.
package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"recipe-finder/internal/core/catalog"
	"recipe-finder/internal/core/ingredient"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"
	"recipe-finder/internal/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ReasonCatalogUnavailable = "recipe catalog unavailable"
	ReasonCancelled          = "search cancelled"
)

// Catalog 搜尋需要的目錄操作
type Catalog interface {
	FilterByIngredient(ctx context.Context, ingredient string) ([]catalog.MealSummary, error)
	LookupByID(ctx context.Context, id string) (*catalog.RecipeDetail, error)
}

// Gate 限制同時進行的搜尋數
type Gate interface {
	Acquire(ctx context.Context) error
	Release()
}

// Service 食材搜尋服務
type Service struct {
	catalog            Catalog
	gate               Gate
	translator         *ingredient.Translator
	concurrency        int
	maxResults         int
	displayIngredients int
}

// NewService 創建搜尋服務，gate 可為 nil
func NewService(cat Catalog, gate Gate, cfg *config.Config) *Service {
	s := &Service{
		catalog:            cat,
		gate:               gate,
		concurrency:        cfg.Catalog.Concurrency,
		maxResults:         cfg.Search.MaxResults,
		displayIngredients: cfg.Search.DisplayIngredients,
	}
	if cfg.Search.Translate {
		s.translator = ingredient.NewTranslator()
	}
	if s.concurrency <= 0 {
		s.concurrency = 1
	}
	return s
}

type scoredDetail struct {
	detail  *catalog.RecipeDetail
	matched []string
}

// Search 依食材搜尋食譜
//
// 單一目錄呼叫失敗只會記錄並略過；只有搜尋閘門拒絕時才回傳 error。
func (s *Service) Search(ctx context.Context, raw []string) (*SearchResult, error) {
	start := time.Now()

	terms := cleanTerms(raw)
	result := &SearchResult{Recipes: []RankedRecipe{}, IngredientsSearched: []string{}}
	if len(terms) == 0 {
		return result, nil
	}

	if s.gate != nil {
		if err := s.gate.Acquire(ctx); err != nil {
			metrics.RecordSearch("rejected", 0, time.Since(start).Seconds())
			return nil, fmt.Errorf("search admission: %w", err)
		}
		defer s.gate.Release()
	}

	if s.translator != nil {
		terms = uniqueTerms(s.translator.TranslateAll(terms))
	}
	result.IngredientsSearched = terms

	candidates, failures := s.collectCandidates(ctx, terms)
	switch {
	case ctx.Err() != nil:
		s.finish(result, nil, ReasonCancelled, start)
		return result, nil
	case failures == len(terms):
		s.finish(result, nil, ReasonCatalogUnavailable, start)
		return result, nil
	case len(candidates) == 0:
		s.finish(result, nil, "", start)
		return result, nil
	}

	details := s.fetchDetails(ctx, candidates)
	requested := ingredient.NormalizeAll(terms)

	scored := make([]scoredDetail, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		matched := verifyMatches(d, requested)
		if len(matched) == 0 {
			continue
		}
		scored = append(scored, scoredDetail{detail: d, matched: matched})
	}

	reason := ""
	if ctx.Err() != nil {
		reason = ReasonCancelled
	}
	s.finish(result, scored, reason, start)
	return result, nil
}

// collectCandidates 對每個查詢詞呼叫篩選，依輸入順序合併，回傳失敗次數
func (s *Service) collectCandidates(ctx context.Context, terms []string) ([]*Candidate, int) {
	type filterSlot struct {
		meals []catalog.MealSummary
		err   error
	}
	slots := make([]filterSlot, len(terms))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, term := range terms {
		i, term := i, term
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return nil
			}
			meals, err := s.catalog.FilterByIngredient(ctx, term)
			slots[i] = filterSlot{meals: meals, err: err}
			return nil
		})
	}
	_ = g.Wait()

	index := make(map[string]*Candidate)
	var ordered []*Candidate
	failures := 0
	for i, slot := range slots {
		if slot.err != nil {
			failures++
			common.LogWarn("食材篩選失敗，略過",
				zap.String("ingredient", terms[i]),
				zap.Error(slot.err),
			)
			continue
		}
		if len(slot.meals) == 0 {
			common.LogDebug("食材沒有對應食譜", zap.String("ingredient", terms[i]))
			continue
		}
		for _, meal := range slot.meals {
			c, ok := index[meal.ID]
			if !ok {
				c = &Candidate{Summary: meal}
				index[meal.ID] = c
				ordered = append(ordered, c)
			}
			c.addSource(terms[i])
		}
	}

	common.LogDebug("候選食譜收集完成",
		zap.Int("ingredients", len(terms)),
		zap.Int("candidates", len(ordered)),
		zap.Int("failures", failures),
	)
	return ordered, failures
}

// fetchDetails 取得每個候選的完整記錄，失敗的位置為 nil
func (s *Service) fetchDetails(ctx context.Context, candidates []*Candidate) []*catalog.RecipeDetail {
	details := make([]*catalog.RecipeDetail, len(candidates))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			detail, err := s.catalog.LookupByID(ctx, c.Summary.ID)
			if err != nil {
				common.LogWarn("食譜詳情取得失敗，略過",
					zap.String("recipe_id", c.Summary.ID),
					zap.Strings("sources", c.Sources),
					zap.Error(err),
				)
				return nil
			}
			details[i] = detail
			return nil
		})
	}
	_ = g.Wait()

	return details
}

// finish 排序、截斷、格式化並記錄指標
func (s *Service) finish(result *SearchResult, scored []scoredDetail, reason string, start time.Time) {
	sort.SliceStable(scored, func(i, j int) bool {
		return len(scored[i].matched) > len(scored[j].matched)
	})
	if len(scored) > s.maxResults {
		scored = scored[:s.maxResults]
	}

	recipes := make([]RankedRecipe, 0, len(scored))
	for _, sd := range scored {
		r := Format(sd.detail)
		if len(r.Ingredients) > s.displayIngredients {
			r.Ingredients = r.Ingredients[:s.displayIngredients]
		}
		r.MatchedIngredients = sd.matched
		recipes = append(recipes, r)
	}

	result.Recipes = recipes
	result.Incomplete = reason != ""
	result.Reason = reason

	outcome := "ok"
	switch {
	case result.Incomplete:
		outcome = "incomplete"
	case len(recipes) == 0:
		outcome = "empty"
	}
	metrics.RecordSearch(outcome, len(recipes), time.Since(start).Seconds())

	common.LogInfo("食材搜尋完成",
		zap.Strings("ingredients", result.IngredientsSearched),
		zap.Int("results", len(recipes)),
		zap.String("outcome", outcome),
		zap.Duration("耗時", time.Since(start)),
	)
}

func cleanTerms(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if t := strings.TrimSpace(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
