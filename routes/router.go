package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/ai"
	"github.com/modernblog/modernblog/analytics"
	"github.com/modernblog/modernblog/config"
	"github.com/modernblog/modernblog/controllers"
	"github.com/modernblog/modernblog/middleware"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

// Deps bundles the shared components the route handlers depend on.
type Deps struct {
	Posts       *repository.PostRepository
	Categories  *repository.CategoryRepository
	Comments    *repository.CommentRepository
	Subscribers *repository.SubscriberRepository
	Users       *repository.UserRepository
	Aggregator  *analytics.Aggregator
	Generator   ai.Generator
}

// SetupRouter wires middlewares and the public and admin API groups.
func SetupRouter(deps Deps) *gin.Engine {
	cfg := config.Get()
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(utils.GinLogger(), utils.GinRecovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.VisitRecorder(deps.Aggregator))

	r.Static("/static", "./static")
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	blog := controllers.NewBlogController(deps.Posts, deps.Categories, deps.Comments, deps.Subscribers, deps.Users, deps.Aggregator)
	admin := controllers.NewPostAdminController(deps.Posts, deps.Categories)
	newsletter := controllers.NewNewsletterController(deps.Subscribers)
	chat := controllers.NewChatController(deps.Posts, deps.Generator, config.Get().GeminiMaxContextBytes)
	auth := controllers.NewAuthController(deps.Users)
	stats := controllers.NewStatsController(deps.Posts, deps.Categories, deps.Aggregator)

	api := r.Group("/api/v1")
	{
		api.GET("/home", blog.Home)
		api.GET("/info", blog.Info)
		api.GET("/posts/:slug", blog.GetPost)
		api.POST("/posts/:id/comments", blog.AddComment)
		api.GET("/categories/:slug", blog.Category)
		api.GET("/authors/:username", blog.Author)
		api.GET("/search", blog.Search)
		api.GET("/search/ranked", blog.RankedSearch)
		api.GET("/recommended", blog.Recommended)

		api.POST("/newsletter/subscribe", newsletter.Subscribe)
		api.POST("/newsletter/unsubscribe", newsletter.Unsubscribe)

		api.POST("/chat", middleware.RateLimitMiddleware(), chat.Chat)

		api.POST("/auth/login", middleware.RateLimitMiddleware(), auth.Login)
	}

	authed := api.Group("/admin", middleware.AdminRequired())
	{
		authed.POST("/auth/logout", auth.Logout)
		authed.GET("/auth/me", auth.Me)

		authed.POST("/posts", admin.CreatePost)
		authed.PUT("/posts/:id", admin.UpdatePost)
		authed.DELETE("/posts/:id", admin.DeletePost)
		authed.POST("/categories", admin.CreateCategory)
		authed.POST("/upload", admin.UploadImage)

		authed.GET("/dashboard", stats.Dashboard)
		authed.GET("/analytics", stats.Analytics)
	}

	return r
}
