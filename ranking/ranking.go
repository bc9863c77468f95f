// Package ranking orders published posts for search and recommendation.
// Relevance scoring, recommendation scoring, and the storage-level
// popularity listing in the repository use different formulas and are
// deliberately kept separate.
package ranking

import (
	"sort"
	"strings"

	"github.com/modernblog/modernblog/repository"
)

const (
	titleMatchScore   = 100
	contentMatchScore = 50

	// RecommendLimit caps the recommendation listing.
	RecommendLimit = 6

	// recommendationCap is where the saturating score flattens out
	// (reached at 200 views).
	recommendationCap = 20.0
)

// RelevanceResult is a post with its keyword-match score.
type RelevanceResult struct {
	repository.PostRecord
	Score int `json:"relevance_score"`
}

// RecommendationResult is a post with its view-derived score.
type RecommendationResult struct {
	repository.PostRecord
	Score float64 `json:"recommendation_score"`
}

// RelevanceScore computes the keyword score for one post: 100 when the
// query is a substring of the title, plus 50 when it is a substring of the
// content, both case-insensitive.
func RelevanceScore(title, content, query string) int {
	q := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(title), q) {
		score += titleMatchScore
	}
	if strings.Contains(strings.ToLower(content), q) {
		score += contentMatchScore
	}
	return score
}

// RankByRelevance scores posts against the query, drops zero scores, and
// sorts by score descending. Ties keep the input order.
func RankByRelevance(posts []repository.PostRecord, query string) []RelevanceResult {
	results := make([]RelevanceResult, 0, len(posts))
	for _, p := range posts {
		score := RelevanceScore(p.Title, p.Content, query)
		if score > 0 {
			results = append(results, RelevanceResult{PostRecord: p, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// RecommendationScore maps a view count onto a saturating score:
// views/10, capped at 20. Monotonically non-decreasing in views.
func RecommendationScore(views int64) float64 {
	score := float64(views) / 10
	if score > recommendationCap {
		return recommendationCap
	}
	return score
}

// Recommend scores every post by view count, sorts descending (ties keep
// input order) and truncates to the top RecommendLimit.
func Recommend(posts []repository.PostRecord) []RecommendationResult {
	results := make([]RecommendationResult, 0, len(posts))
	for _, p := range posts {
		results = append(results, RecommendationResult{
			PostRecord: p,
			Score:      RecommendationScore(p.Views),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > RecommendLimit {
		results = results[:RecommendLimit]
	}
	return results
}
