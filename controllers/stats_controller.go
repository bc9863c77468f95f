package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/analytics"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

const popularStatsLimit = 10

// StatsController serves the admin dashboard and traffic analytics.
type StatsController struct {
	posts      *repository.PostRepository
	categories *repository.CategoryRepository
	agg        *analytics.Aggregator
}

// NewStatsController creates a StatsController.
func NewStatsController(posts *repository.PostRepository, categories *repository.CategoryRepository, agg *analytics.Aggregator) *StatsController {
	return &StatsController{posts: posts, categories: categories, agg: agg}
}

// Dashboard returns everything the admin panel renders: all posts with
// drafts and scheduled posts broken out, categories, and the site totals.
func (s *StatsController) Dashboard(ctx *gin.Context) {
	posts, err := s.posts.List("all")
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to load posts")
		return
	}
	drafts, err := s.posts.ListDrafts()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to load drafts")
		return
	}
	scheduled, err := s.posts.ListScheduled()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50082, "failed to load scheduled posts")
		return
	}
	categories, err := s.categories.List()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50083, "failed to load categories")
		return
	}
	summary, err := s.agg.Summarize()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50084, "failed to compute summary")
		return
	}

	utils.Success(ctx, gin.H{
		"posts":      posts,
		"drafts":     drafts,
		"scheduled":  scheduled,
		"categories": categories,
		"summary":    summary,
	})
}

// Analytics returns the traffic summary and the most viewed posts.
func (s *StatsController) Analytics(ctx *gin.Context) {
	summary, err := s.agg.Summarize()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50085, "failed to compute summary")
		return
	}
	popular, err := s.posts.ListPopular(popularStatsLimit)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50086, "failed to load popular posts")
		return
	}
	utils.Success(ctx, gin.H{"summary": summary, "popular_posts": popular})
}
