package controllers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/config"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

// NewsletterController handles subscribe and unsubscribe requests.
type NewsletterController struct {
	subscribers *repository.SubscriberRepository
}

// NewNewsletterController creates a NewsletterController.
func NewNewsletterController(subscribers *repository.SubscriberRepository) *NewsletterController {
	return &NewsletterController{subscribers: subscribers}
}

// Subscribe registers an email address. Subscribing an already-registered
// address is reported as such, not as an error. A welcome mail goes out
// best-effort; delivery failures never fail the request.
func (n *NewsletterController) Subscribe(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40051, "invalid email address")
		return
	}

	added, err := n.subscribers.Add(email)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to subscribe")
		return
	}
	if !added {
		utils.Success(ctx, gin.H{"subscribed": false, "message": "already subscribed"})
		return
	}

	go sendWelcomeMail(email)

	utils.Success(ctx, gin.H{"subscribed": true, "message": "subscribed"})
}

// Unsubscribe marks a subscriber inactive. Unknown addresses succeed too so
// the endpoint leaks nothing about the subscriber list.
func (n *NewsletterController) Unsubscribe(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40052, "email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := n.subscribers.Unsubscribe(email); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to unsubscribe")
		return
	}
	utils.Success(ctx, gin.H{"message": "unsubscribed"})
}

func sendWelcomeMail(email string) {
	cfg := config.Get()
	subject := fmt.Sprintf("Welcome to %s", cfg.BlogTitle)
	body := fmt.Sprintf(
		"Hi,\n\nThanks for subscribing to %s. New posts will land in your inbox.\n\nIf this wasn't you, you can unsubscribe at any time.\n",
		cfg.BlogTitle,
	)
	if err := utils.SendMail(email, subject, body); err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("welcome mail to %s failed: %v", email, err)
		}
	}
}
