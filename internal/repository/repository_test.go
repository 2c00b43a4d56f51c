package repository

import (
	"testing"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// withMiniredis backs the cache package with a miniredis instance for tests
// that exercise repository/cache interaction.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Star{},
		&models.QuestionView{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, userID uint, title string) *models.Question {
	t.Helper()
	question := &models.Question{
		Title:   title,
		Content: "content of " + title,
		UserID:  userID,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("Failed to create question %q: %v", title, err)
	}
	return question
}

func createTestAnswer(t *testing.T, db *gorm.DB, userID, questionID uint) *models.Answer {
	t.Helper()
	answer := &models.Answer{
		Content:    "an answer",
		UserID:     userID,
		QuestionID: questionID,
	}
	if err := db.Create(answer).Error; err != nil {
		t.Fatalf("Failed to create answer: %v", err)
	}
	return answer
}
