package repository

import (
	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
)

// CommentRecord is a comment row joined with the username of the registered
// user who wrote it, when there is one.
type CommentRecord struct {
	models.Comment `gorm:"embedded"`
	UserUsername   string `json:"user_username"`
}

// CommentRepository stores and lists post comments.
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a CommentRepository bound to the handle.
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Add inserts a comment for a post. Comments go in as approved; the pending
// status exists in the schema but no moderation queue acts on it.
func (r *CommentRepository) Add(postID uint, content, authorName string, userID *uint) error {
	if authorName == "" {
		authorName = "Anonymous"
	}
	comment := models.Comment{
		PostID:     postID,
		UserID:     userID,
		AuthorName: authorName,
		Content:    content,
		Status:     models.CommentApproved,
	}
	return r.db.Create(&comment).Error
}

// ListApprovedByPost returns a post's approved comments, newest first.
func (r *CommentRepository) ListApprovedByPost(postID uint) ([]CommentRecord, error) {
	var recs []CommentRecord
	err := r.db.Table("comments").
		Select("comments.*, users.username AS user_username").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ? AND comments.status = ?", postID, models.CommentApproved).
		Order("comments.created_at DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
