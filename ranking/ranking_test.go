package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/repository"
)

func rec(title, content string, views int64) repository.PostRecord {
	return repository.PostRecord{
		Post: models.Post{Title: title, Content: content, Views: views},
	}
}

func TestRelevanceScore(t *testing.T) {
	assert.Equal(t, 100, RelevanceScore("Go Concurrency", "nothing here", "go"))
	assert.Equal(t, 50, RelevanceScore("Unrelated", "all about go routines", "go"))
	assert.Equal(t, 150, RelevanceScore("Go Patterns", "more go content", "go"))
	assert.Equal(t, 0, RelevanceScore("Rust", "memory safety", "go"))
}

func TestRelevanceScoreIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, 150, RelevanceScore("GOLANG TIPS", "Golang tricks", "golang"))
	assert.Equal(t, 100, RelevanceScore("golang tips", "other things", "GOLANG"))
}

func TestRankByRelevanceDropsZeroScores(t *testing.T) {
	posts := []repository.PostRecord{
		rec("Rust Basics", "ownership", 0),
		rec("Go Basics", "goroutines and go channels", 0),
	}
	results := RankByRelevance(posts, "go")
	assert.Len(t, results, 1)
	assert.Equal(t, "Go Basics", results[0].Title)
	assert.Equal(t, 150, results[0].Score)
}

func TestRankByRelevanceOrdersByScoreKeepingTies(t *testing.T) {
	posts := []repository.PostRecord{
		rec("First Go Title", "unrelated", 0),
		rec("Deep Dive", "go internals", 0),
		rec("Second Go Title", "unrelated", 0),
		rec("Go Everywhere", "go go go", 0),
	}
	results := RankByRelevance(posts, "go")
	assert.Len(t, results, 4)
	assert.Equal(t, "Go Everywhere", results[0].Title)
	// Two 100-score titles keep their input order.
	assert.Equal(t, "First Go Title", results[1].Title)
	assert.Equal(t, "Second Go Title", results[2].Title)
	assert.Equal(t, "Deep Dive", results[3].Title)
}

func TestRecommendationScoreSaturates(t *testing.T) {
	assert.Equal(t, 0.0, RecommendationScore(0))
	assert.Equal(t, 2.5, RecommendationScore(25))
	assert.Equal(t, 20.0, RecommendationScore(200))
	assert.Equal(t, 20.0, RecommendationScore(10000))
}

func TestRecommendationScoreIsMonotonic(t *testing.T) {
	prev := RecommendationScore(0)
	for views := int64(1); views <= 500; views += 7 {
		score := RecommendationScore(views)
		assert.GreaterOrEqual(t, score, prev, "views=%d", views)
		prev = score
	}
}

func TestRecommendTruncatesToLimit(t *testing.T) {
	posts := make([]repository.PostRecord, 0, 10)
	for i := 0; i < 10; i++ {
		posts = append(posts, rec("Post", "content", int64(i*30)))
	}
	results := Recommend(posts)
	assert.Len(t, results, RecommendLimit)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
	}
	assert.Equal(t, 20.0, results[0].Score)
}

func TestRecommendKeepsInputOrderOnTies(t *testing.T) {
	posts := []repository.PostRecord{
		rec("A", "x", 300),
		rec("B", "x", 250),
		rec("C", "x", 10),
	}
	results := Recommend(posts)
	assert.Equal(t, "A", results[0].Title)
	assert.Equal(t, "B", results[1].Title)
	assert.Equal(t, "C", results[2].Title)
}
