package ai

import (
	"fmt"
	"strings"

	"github.com/modernblog/modernblog/repository"
)

const (
	contextHeader = "BLOG POSTS:\n\n"

	// NoContentSentinel is returned when there are no published posts to
	// ground the model with.
	NoContentSentinel = "No posts available yet."
)

// BuildContext formats the published-post corpus into the text block that
// grounds the chat prompt: a fixed header, then one numbered record per
// post with title, author, category and full content, blank-line separated.
//
// maxBytes bounds the block's size. Truncation happens only at whole-post
// boundaries: a record is either fully present or absent. maxBytes <= 0
// disables the cap.
func BuildContext(posts []repository.PostRecord, maxBytes int) string {
	if len(posts) == 0 {
		return NoContentSentinel
	}

	var b strings.Builder
	b.WriteString(contextHeader)
	for i, post := range posts {
		record := fmt.Sprintf("POST %d:\nTitle: %s\nAuthor: %s\nCategory: %s\nContent: %s\n\n",
			i+1, post.Title, post.AuthorName, post.CategoryName, post.Content)
		if maxBytes > 0 && b.Len()+len(record) > maxBytes {
			break
		}
		b.WriteString(record)
	}
	return b.String()
}
