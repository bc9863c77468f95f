package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/analytics"
	"github.com/modernblog/modernblog/config"
	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/ranking"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

const sidebarPopularLimit = 3

// BlogController serves the public reading surface: home feed, post detail,
// category and author listings, search, and recommendations.
type BlogController struct {
	posts       *repository.PostRepository
	categories  *repository.CategoryRepository
	comments    *repository.CommentRepository
	subscribers *repository.SubscriberRepository
	users       *repository.UserRepository
	agg         *analytics.Aggregator
}

// NewBlogController creates a BlogController.
func NewBlogController(
	posts *repository.PostRepository,
	categories *repository.CategoryRepository,
	comments *repository.CommentRepository,
	subscribers *repository.SubscriberRepository,
	users *repository.UserRepository,
	agg *analytics.Aggregator,
) *BlogController {
	return &BlogController{
		posts:       posts,
		categories:  categories,
		comments:    comments,
		subscribers: subscribers,
		users:       users,
		agg:         agg,
	}
}

// Home returns the published feed: featured post, recent posts, categories,
// popular sidebar, and the active subscriber count.
func (b *BlogController) Home(ctx *gin.Context) {
	posts, err := b.posts.List(models.StatusPublished)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to load posts")
		return
	}
	categories, err := b.categories.List()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load categories")
		return
	}
	popular, err := b.posts.ListPopular(sidebarPopularLimit)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load popular posts")
		return
	}
	subscriberCount, err := b.subscribers.ActiveCount()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to count subscribers")
		return
	}

	var featured *repository.PostRecord
	recent := []repository.PostRecord{}
	if len(posts) > 0 {
		featured = &posts[0]
		end := len(posts)
		if end > 10 {
			end = 10
		}
		recent = posts[1:end]
	}

	utils.Success(ctx, gin.H{
		"featured_post":    featured,
		"recent_posts":     recent,
		"categories":       categories,
		"popular_posts":    popular,
		"subscriber_count": subscriberCount,
	})
}

// GetPost serves a post by slug, renders its markdown, bumps the view
// counter and appends a visit record, then attaches approved comments.
func (b *BlogController) GetPost(ctx *gin.Context) {
	slug := ctx.Param("slug")
	post, err := b.posts.GetBySlug(slug)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to load post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "post not found")
		return
	}

	if err := b.agg.IncrementViews(post.ID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50015, "failed to update view counter")
		return
	}
	postID := post.ID
	if err := b.agg.RecordVisit(&postID, ctx.ClientIP(), ctx.Request.UserAgent(), ctx.Request.Referer()); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to record visit")
		return
	}

	comments, err := b.comments.ListApprovedByPost(post.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50017, "failed to load comments")
		return
	}

	utils.Success(ctx, gin.H{
		"post":         post,
		"content_html": utils.RenderMarkdown(post.Content),
		"comments":     comments,
	})
}

// Category lists the published posts of one category, found by slug.
func (b *BlogController) Category(ctx *gin.Context) {
	slug := ctx.Param("slug")
	category, err := b.categories.GetBySlug(slug)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50018, "failed to load category")
		return
	}
	if category == nil {
		utils.Error(ctx, http.StatusNotFound, 40411, "category not found")
		return
	}
	posts, err := b.posts.ListByCategory(category.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50019, "failed to load posts")
		return
	}
	utils.Success(ctx, gin.H{"category": category, "posts": posts})
}

// Search runs the storage-level substring search over published posts.
func (b *BlogController) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		utils.Error(ctx, http.StatusBadRequest, 40030, "missing search query")
		return
	}
	posts, err := b.posts.Search(query)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "search failed")
		return
	}
	utils.Success(ctx, gin.H{"query": query, "posts": posts, "total_results": len(posts)})
}

// RankedSearch scores every published post against the query (title match
// weighted over content match) and returns the relevance-ordered results.
func (b *BlogController) RankedSearch(ctx *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(ctx.Query("q")))
	if query == "" {
		utils.Error(ctx, http.StatusBadRequest, 40031, "missing search query")
		return
	}
	posts, err := b.posts.List(models.StatusPublished)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "search failed")
		return
	}
	results := ranking.RankByRelevance(posts, query)
	utils.Success(ctx, gin.H{"query": query, "posts": results, "total_results": len(results)})
}

// Recommended returns the top recommendation-scored published posts.
func (b *BlogController) Recommended(ctx *gin.Context) {
	posts, err := b.posts.List(models.StatusPublished)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load posts")
		return
	}
	utils.Success(ctx, gin.H{"posts": ranking.Recommend(posts)})
}

// Author serves an author's public profile with their published posts.
func (b *BlogController) Author(ctx *gin.Context) {
	username := ctx.Param("username")
	user, err := b.users.GetByUsername(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to load author")
		return
	}
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, 40412, "author not found")
		return
	}
	posts, err := b.posts.ListByAuthor(user.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50034, "failed to load posts")
		return
	}
	utils.Success(ctx, gin.H{
		"author": gin.H{"username": user.Username, "bio": user.Bio},
		"posts":  posts,
	})
}

// AddComment appends a reader comment to a post. Comments are stored
// approved; there is no moderation queue.
func (b *BlogController) AddComment(ctx *gin.Context) {
	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid post id")
		return
	}

	var req struct {
		Content    string `json:"content" binding:"required"`
		AuthorName string `json:"author_name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid request payload")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40034, "comment cannot be empty")
		return
	}
	authorName := utils.Sanitize(strings.TrimSpace(req.AuthorName))

	post, err := b.posts.GetByID(uint(postID))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50035, "failed to load post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40413, "post not found")
		return
	}

	if err := b.comments.Add(post.ID, content, authorName, nil); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50036, "failed to add comment")
		return
	}
	utils.Success(ctx, gin.H{"message": "comment added"})
}

// Info exposes the blog title, description and categories for the frontend
// chrome.
func (b *BlogController) Info(ctx *gin.Context) {
	cfg := config.Get()
	categories, err := b.categories.List()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50037, "failed to load categories")
		return
	}
	utils.Success(ctx, gin.H{
		"title":       cfg.BlogTitle,
		"description": cfg.BlogDescription,
		"categories":  categories,
	})
}
