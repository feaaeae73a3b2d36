package database

import (
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "messages", "follows", "likes"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	assert.True(t, db.Migrator().HasIndex(&models.Follow{}, "idx_follower_followed"))
	assert.True(t, db.Migrator().HasIndex(&models.Like{}, "idx_user_message"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

// The follows unique index rejects duplicate edges at the schema level, so
// concurrent follow requests cannot double-insert.
func TestFollowUniqueIndexEnforced(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.Follow{FollowerID: 1, FollowedID: 2}).Error)
	assert.Error(t, db.Create(&models.Follow{FollowerID: 1, FollowedID: 2}).Error)
	assert.NoError(t, db.Create(&models.Follow{FollowerID: 2, FollowedID: 1}).Error)
}
