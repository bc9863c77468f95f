package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernblog/modernblog/repository"
)

type fakeGenerator struct {
	lastQuestion string
	lastContext  string
	reply        string
}

func (f *fakeGenerator) Answer(question, contextBlock string) string {
	f.lastQuestion = question
	f.lastContext = contextBlock
	return f.reply
}

func TestChatGroundsAnswerOnPublishedPosts(t *testing.T) {
	db := newTestDB(t)
	posts := repository.NewPostRepository(db)
	_, err := posts.Create(repository.PostInput{Title: "Go Generics", Content: "type parameters explained"})
	require.NoError(t, err)

	fake := &fakeGenerator{reply: "generics are type parameters"}
	engine := newTestEngine()
	engine.POST("/chat", NewChatController(posts, fake, 0).Chat)

	w := doJSON(t, engine, "POST", "/chat", map[string]string{"message": "what are generics?"})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "generics are type parameters", data["response"])
	assert.Equal(t, "what are generics?", fake.lastQuestion)
	assert.Contains(t, fake.lastContext, "Go Generics")
	assert.Contains(t, fake.lastContext, "type parameters explained")
}

func TestChatEmptyMessageRejected(t *testing.T) {
	db := newTestDB(t)
	posts := repository.NewPostRepository(db)
	fake := &fakeGenerator{reply: "unused"}
	engine := newTestEngine()
	engine.POST("/chat", NewChatController(posts, fake, 0).Chat)

	w := doJSON(t, engine, "POST", "/chat", map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.lastQuestion)
}

func TestChatWithoutGeneratorDegrades(t *testing.T) {
	db := newTestDB(t)
	posts := repository.NewPostRepository(db)
	engine := newTestEngine()
	engine.POST("/chat", NewChatController(posts, nil, 0).Chat)

	w := doJSON(t, engine, "POST", "/chat", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "Error: chat is not configured", data["response"])
}

func TestChatEmptyCorpusUsesSentinel(t *testing.T) {
	db := newTestDB(t)
	posts := repository.NewPostRepository(db)
	fake := &fakeGenerator{reply: "I have no posts to draw on"}
	engine := newTestEngine()
	engine.POST("/chat", NewChatController(posts, fake, 0).Chat)

	w := doJSON(t, engine, "POST", "/chat", map[string]string{"message": "anything?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No posts available yet.", fake.lastContext)
}
