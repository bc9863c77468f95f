package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope every API handler answers with. Code 0 means
// success; non-zero codes identify the failure class for the frontend.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success answers 200 with the payload wrapped in the envelope.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, JSONResponse{Message: "success", Data: data})
}

// Created answers 201 for newly stored resources.
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, JSONResponse{Message: "success", Data: data})
}

// Error answers with the given HTTP status and application error code.
func Error(ctx *gin.Context, status, code int, message string) {
	ctx.JSON(status, JSONResponse{Code: code, Message: message})
}
