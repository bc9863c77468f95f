package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", handler)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := serve(t, func(ctx *gin.Context) {
		Success(ctx, gin.H{"value": 1})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, "success", body["message"])
	assert.NotNil(t, body["data"])
}

func TestCreatedEnvelope(t *testing.T) {
	w, body := serve(t, func(ctx *gin.Context) {
		Created(ctx, gin.H{"id": 7})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), body["code"])
}

func TestErrorEnvelopeOmitsData(t *testing.T) {
	w, body := serve(t, func(ctx *gin.Context) {
		Error(ctx, http.StatusNotFound, 40410, "post not found")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(40410), body["code"])
	assert.Equal(t, "post not found", body["message"])
	_, present := body["data"]
	assert.False(t, present)
}
