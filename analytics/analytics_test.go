package analytics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/modernblog/modernblog/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Post{},
		&models.Subscriber{},
		&models.Visit{},
	))
	return db
}

func TestRecordVisitAppendsRows(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)

	require.NoError(t, agg.RecordVisit(nil, "10.0.0.1", "curl/8.0", ""))
	postID := uint(42)
	require.NoError(t, agg.RecordVisit(&postID, "10.0.0.2", "Mozilla/5.0", "https://example.com"))
	// The same visitor counts again; nothing is deduplicated.
	require.NoError(t, agg.RecordVisit(&postID, "10.0.0.2", "Mozilla/5.0", "https://example.com"))

	var count int64
	require.NoError(t, db.Model(&models.Visit{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var withPost int64
	require.NoError(t, db.Model(&models.Visit{}).Where("post_id = ?", postID).Count(&withPost).Error)
	assert.Equal(t, int64(2), withPost)
}

func TestIncrementViewsAccumulates(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)

	post := models.Post{Title: "Counted", Slug: "counted", Content: "x", Status: models.StatusPublished, Views: 5}
	require.NoError(t, db.Create(&post).Error)

	for i := 0; i < 25; i++ {
		require.NoError(t, agg.IncrementViews(post.ID))
	}

	var got models.Post
	require.NoError(t, db.Take(&got, post.ID).Error)
	assert.Equal(t, int64(30), got.Views)
}

func TestIncrementViewsConcurrentCallersLoseNothing(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One shared in-memory database; the race under test is between
	// callers, not connections.
	sqlDB.SetMaxOpenConns(1)

	agg := NewAggregator(db)
	post := models.Post{Title: "Contended", Slug: "contended", Content: "x", Status: models.StatusPublished}
	require.NoError(t, db.Create(&post).Error)

	const n = 50
	errs := make(chan error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			errs <- agg.IncrementViews(post.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var got models.Post
	require.NoError(t, db.Take(&got, post.ID).Error)
	assert.Equal(t, int64(n), got.Views)
}

func TestIncrementViewsUnknownPostIsNoOp(t *testing.T) {
	agg := NewAggregator(newTestDB(t))
	assert.NoError(t, agg.IncrementViews(9999))
}

func TestSummarizeCountsIndependently(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)

	require.NoError(t, db.Create(&models.Post{Title: "P1", Slug: "p1", Content: "x", Status: models.StatusPublished}).Error)
	require.NoError(t, db.Create(&models.Post{Title: "P2", Slug: "p2", Content: "x", Status: models.StatusDraft}).Error)
	require.NoError(t, db.Create(&models.Subscriber{Email: "a@example.com", Status: models.SubscriberActive}).Error)
	require.NoError(t, db.Create(&models.Subscriber{Email: "b@example.com", Status: models.SubscriberUnsubscribed}).Error)
	require.NoError(t, agg.RecordVisit(nil, "10.0.0.1", "ua", ""))
	require.NoError(t, agg.RecordVisit(nil, "10.0.0.1", "ua", ""))

	summary, err := agg.Summarize()
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalVisits)
	assert.Equal(t, int64(1), summary.TotalPosts)
	assert.Equal(t, int64(1), summary.TotalSubscribers)
}
