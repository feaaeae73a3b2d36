package seed

import (
	"fmt"
	"log"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Seed populates the database with demo users, follows, messages and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	if err := createSocialMesh(f, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Println("✓ follow graph created")

	messages, err := createMessages(f, users, opts.NumMessages)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("✓ %d messages created", len(messages))

	if err := createLikes(f, users, messages); err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Println("✓ likes created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE likes, follows, messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a few well-known logins for manual testing.
	if count >= 3 {
		baseUsers := []string{"warbler", "tuckerdiane", "test"}
		for _, name := range baseUsers {
			name := name
			user, err := f.CreateUser(func(u *models.User) {
				u.Username = name
				u.Email = fmt.Sprintf("%s@example.com", name)
				u.Bio = "One of the OGs."
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createSocialMesh gives every user a handful of people to follow so home
// timelines have content right away.
func createSocialMesh(f *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, follower := range users {
		n := f.r.Intn(6) + 2
		for j := 0; j < n; j++ {
			followed := users[f.r.Intn(len(users))]
			if followed.ID == follower.ID {
				continue
			}
			// duplicate edges are rejected by the unique index, skip quietly
			_ = f.CreateFollow(follower, followed)
		}
	}
	return nil
}

func createMessages(f *Factory, users []*models.User, count int) ([]*models.Message, error) {
	messages := make([]*models.Message, 0, count)
	for i := 0; i < count; i++ {
		user := users[f.r.Intn(len(users))]
		message, err := f.CreateMessage(user)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d messages...", i)
		}
	}
	return messages, nil
}

func createLikes(f *Factory, users []*models.User, messages []*models.Message) error {
	for _, message := range messages {
		n := f.r.Intn(4)
		for j := 0; j < n; j++ {
			user := users[f.r.Intn(len(users))]
			if user.ID == message.UserID {
				continue
			}
			_ = f.CreateLike(user, message)
		}
	}
	return nil
}
