package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/repository"
)

func post(title, author, category, content string) repository.PostRecord {
	return repository.PostRecord{
		Post:         models.Post{Title: title, Content: content},
		AuthorName:   author,
		CategoryName: category,
	}
}

func TestBuildContextEmptyCorpus(t *testing.T) {
	assert.Equal(t, NoContentSentinel, BuildContext(nil, 0))
	assert.Equal(t, NoContentSentinel, BuildContext([]repository.PostRecord{}, 1024))
}

func TestBuildContextFormatsNumberedRecords(t *testing.T) {
	posts := []repository.PostRecord{
		post("First", "alice", "Go", "content one"),
		post("Second", "alice", "Life", "content two"),
	}
	got := BuildContext(posts, 0)

	assert.True(t, strings.HasPrefix(got, "BLOG POSTS:\n\n"))
	assert.Contains(t, got, "POST 1:\nTitle: First\nAuthor: alice\nCategory: Go\nContent: content one\n\n")
	assert.Contains(t, got, "POST 2:\nTitle: Second\nAuthor: alice\nCategory: Life\nContent: content two\n\n")
	assert.Less(t, strings.Index(got, "POST 1:"), strings.Index(got, "POST 2:"))
}

func TestBuildContextTruncatesAtWholePostBoundaries(t *testing.T) {
	posts := []repository.PostRecord{
		post("First", "a", "c", strings.Repeat("x", 100)),
		post("Second", "a", "c", strings.Repeat("y", 100)),
		post("Third", "a", "c", strings.Repeat("z", 100)),
	}
	full := BuildContext(posts, 0)
	firstTwo := BuildContext(posts[:2], 0)

	capped := BuildContext(posts, len(firstTwo))
	assert.Equal(t, firstTwo, capped)
	assert.NotContains(t, capped, "Third")
	assert.NotContains(t, capped, "zzz")
	assert.Less(t, len(capped), len(full))
}

func TestBuildContextCapSmallerThanFirstRecord(t *testing.T) {
	posts := []repository.PostRecord{post("Only", "a", "c", strings.Repeat("x", 500))}
	got := BuildContext(posts, 32)
	assert.Equal(t, "BLOG POSTS:\n\n", got)
}

func TestBuildPromptCombinesQuestionAndContext(t *testing.T) {
	got := buildPrompt("what is this blog about?", "BLOG POSTS:\n\nPOST 1:\n...")
	assert.Contains(t, got, "Question: what is this blog about?")
	assert.True(t, strings.HasSuffix(got, "BLOG POSTS:\n\nPOST 1:\n..."))
}

func TestBuildContextRecordCountMatchesInput(t *testing.T) {
	var posts []repository.PostRecord
	for i := 0; i < 7; i++ {
		posts = append(posts, post(fmt.Sprintf("Post %d", i), "a", "c", "body"))
	}
	got := BuildContext(posts, 0)
	assert.Equal(t, 7, strings.Count(got, "POST "))
}
