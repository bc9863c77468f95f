package main

import (
	"log"
	"time"

	"github.com/modernblog/modernblog/ai"
	"github.com/modernblog/modernblog/analytics"
	"github.com/modernblog/modernblog/config"
	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/routes"
	"github.com/modernblog/modernblog/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer utils.SyncLogger()

	db := config.InitDatabase(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Subscriber{},
		&models.Visit{},
	)

	deps := routes.Deps{
		Posts:       repository.NewPostRepository(db),
		Categories:  repository.NewCategoryRepository(db),
		Comments:    repository.NewCommentRepository(db),
		Subscribers: repository.NewSubscriberRepository(db),
		Users:       repository.NewUserRepository(db),
		Aggregator:  analytics.NewAggregator(db),
	}

	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewClient(ai.Options{
			APIKey:          cfg.GeminiAPIKey,
			Model:           cfg.GeminiModel,
			Temperature:     float32(cfg.GeminiTemperature),
			MaxOutputTokens: int32(cfg.GeminiMaxOutputTokens),
			Timeout:         time.Duration(cfg.GeminiTimeoutSec) * time.Second,
		})
		if err != nil {
			log.Fatalf("failed to create generation client: %v", err)
		}
		defer client.Close()
		deps.Generator = client
	} else {
		utils.Sugar.Warn("GEMINI_API_KEY not set, chat endpoint will return an error text")
	}

	router := routes.SetupRouter(deps)

	utils.Sugar.Infof("listening on :%s", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
