package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/ai"
	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

// ChatController answers reader questions grounded on the published posts.
type ChatController struct {
	posts           *repository.PostRepository
	generator       ai.Generator
	maxContextBytes int
}

// NewChatController creates a ChatController. generator may be nil when no
// API key is configured; the endpoint then degrades to an error text.
func NewChatController(posts *repository.PostRepository, generator ai.Generator, maxContextBytes int) *ChatController {
	return &ChatController{posts: posts, generator: generator, maxContextBytes: maxContextBytes}
}

// Chat rebuilds the context block from the current published posts on every
// request and asks the generator for an answer. Generation failures come
// back inside the response body as "Error: ..." text with HTTP 200; only
// storage faults produce a 5xx.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.Error(ctx, http.StatusBadRequest, 40061, "message cannot be empty")
		return
	}

	if c.generator == nil {
		utils.Success(ctx, gin.H{"response": "Error: chat is not configured"})
		return
	}

	posts, err := c.posts.List(models.StatusPublished)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load posts")
		return
	}

	contextBlock := ai.BuildContext(posts, c.maxContextBytes)
	answer := c.generator.Answer(message, contextBlock)

	utils.Success(ctx, gin.H{"response": answer})
}
