package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	message := createTestMessage(t, db, alice, "hello", time.Now())
	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, MessageID: message.ID}).Error)

	t.Run("annotates like count and the viewer's liked flag", func(t *testing.T) {
		got, err := repo.GetByID(ctx, message.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", got.Text)
		assert.Equal(t, 1, got.LikesCount)
		assert.True(t, got.Liked)
		assert.Equal(t, "alice", got.User.Username)
	})

	t.Run("anonymous viewers never see liked=true", func(t *testing.T) {
		got, err := repo.GetByID(ctx, message.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, got.LikesCount)
		assert.False(t, got.Liked)
	})

	t.Run("missing message", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 404, 0)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestMessageRepository_HomeTimeline(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	// Alice follows Bob but not Carol.
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}).Error)

	base := time.Now().Add(-time.Hour)
	createTestMessage(t, db, alice, "alice oldest", base)
	createTestMessage(t, db, bob, "bob middle", base.Add(10*time.Minute))
	createTestMessage(t, db, alice, "alice newest", base.Add(20*time.Minute))
	createTestMessage(t, db, carol, "carol stranger", base.Add(30*time.Minute))

	messages, err := repo.HomeTimeline(ctx, alice.ID, 100)
	require.NoError(t, err)

	require.Len(t, messages, 3, "only own and followed users' messages")
	assert.Equal(t, "alice newest", messages[0].Text)
	assert.Equal(t, "bob middle", messages[1].Text)
	assert.Equal(t, "alice oldest", messages[2].Text)
}

func TestMessageRepository_HomeTimelineCap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 110; i++ {
		createTestMessage(t, db, alice, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	messages, err := repo.HomeTimeline(ctx, alice.ID, 100)
	require.NoError(t, err)

	assert.Len(t, messages, 100)
	// The cap keeps the newest entries.
	assert.Equal(t, "message 109", messages[0].Text)
	assert.Equal(t, "message 10", messages[99].Text)
}

func TestMessageRepository_LikedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	base := time.Now().Add(-time.Hour)
	first := createTestMessage(t, db, bob, "first", base)
	second := createTestMessage(t, db, bob, "second", base.Add(time.Minute))
	createTestMessage(t, db, bob, "unliked", base.Add(2*time.Minute))

	require.NoError(t, db.Create(&models.Like{UserID: alice.ID, MessageID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: alice.ID, MessageID: second.ID}).Error)

	messages, err := repo.LikedBy(ctx, alice.ID, 100, alice.ID)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Text)
	assert.Equal(t, "first", messages[1].Text)
	assert.True(t, messages[0].Liked)
	assert.True(t, messages[1].Liked)
}

func TestMessageRepository_DeleteRemovesLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	message := createTestMessage(t, db, alice, "to delete", time.Now())
	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, MessageID: message.ID}).Error)

	require.NoError(t, repo.Delete(ctx, message.ID))

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("id = ?", message.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Like{}).Where("message_id = ?", message.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
