package seed

import (
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	))
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := setupSeedTestDB(t)
	f := NewFactory(db, Options{SkipBcrypt: true})

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Username)
	assert.NotEmpty(t, user.Email)
	assert.Equal(t, "password123", user.Password)

	named, err := f.CreateUser(func(u *models.User) {
		u.Username = "fixedname"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixedname", named.Username)
}

func TestFactoryCreateMessage(t *testing.T) {
	db := setupSeedTestDB(t)
	f := NewFactory(db, Options{SkipBcrypt: true, MaxDays: 30})

	user, err := f.CreateUser()
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		message, err := f.CreateMessage(user)
		require.NoError(t, err)
		assert.NotZero(t, message.ID)
		assert.LessOrEqual(t, len(message.Text), models.MaxMessageLen)
		assert.Equal(t, user.ID, message.UserID)
	}
}

func TestSeedPopulatesSocialGraph(t *testing.T) {
	db := setupSeedTestDB(t)

	err := Seed(db, Options{
		NumUsers:    5,
		NumMessages: 20,
		ShouldClean: false,
		SkipBcrypt:  true,
	})
	require.NoError(t, err)

	var userCount, messageCount, followCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Message{}).Count(&messageCount).Error)
	require.NoError(t, db.Model(&models.Follow{}).Count(&followCount).Error)

	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(20), messageCount)
	assert.NotZero(t, followCount)

	// The well-known demo logins exist.
	var demo models.User
	require.NoError(t, db.Where("username = ?", "warbler").First(&demo).Error)
}
