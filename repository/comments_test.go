package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernblog/modernblog/models"
)

func TestAddCommentDefaultsToAnonymous(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	postID, err := posts.Create(PostInput{Title: "Commented Post", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, comments.Add(postID, "nice post", "", nil))

	list, err := comments.ListApprovedByPost(postID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Anonymous", list[0].AuthorName)
	assert.Equal(t, models.CommentApproved, list[0].Status)
}

func TestListApprovedByPostFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	postID, err := posts.Create(PostInput{Title: "Busy Post", Content: "body"})
	require.NoError(t, err)
	otherID, err := posts.Create(PostInput{Title: "Quiet Post", Content: "body"})
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		c := models.Comment{
			PostID:     postID,
			AuthorName: "Reader",
			Content:    text,
			Status:     models.CommentApproved,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&c).Error)
	}
	pending := models.Comment{
		PostID:     postID,
		AuthorName: "Reader",
		Content:    "held back",
		Status:     models.CommentPending,
		CreatedAt:  base.Add(time.Hour),
	}
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, comments.Add(otherID, "elsewhere", "", nil))

	list, err := comments.ListApprovedByPost(postID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	assert.Equal(t, "first", list[2].Content)
}

func TestCommentJoinsRegisteredUser(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	user := models.User{Username: "carol", Email: "carol@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	postID, err := posts.Create(PostInput{Title: "Member Post", Content: "body"})
	require.NoError(t, err)
	require.NoError(t, comments.Add(postID, "hello", "Carol", &user.ID))

	list, err := comments.ListApprovedByPost(postID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "carol", list[0].UserUsername)
}
