package service

import (
	"testing"

	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the real repositories on an in-memory database so service
// rules are exercised against actual SQL behavior.
type testEnv struct {
	db        *gorm.DB
	users     repository.UserRepository
	questions repository.QuestionRepository
	answers   repository.AnswerRepository
	stars     repository.StarRepository
	views     repository.ViewRepository
	stats     repository.StatsRepository
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:        db,
		users:     repository.NewUserRepository(db),
		questions: repository.NewQuestionRepository(db),
		answers:   repository.NewAnswerRepository(db),
		stars:     repository.NewStarRepository(db),
		views:     repository.NewViewRepository(db),
		stats:     repository.NewStatsRepository(db),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createQuestion(t *testing.T, userID uint, title string) *models.Question {
	t.Helper()
	question := &models.Question{
		Title:   title,
		Content: "content of " + title,
		UserID:  userID,
	}
	if err := e.db.Create(question).Error; err != nil {
		t.Fatalf("Failed to create question %q: %v", title, err)
	}
	return question
}

func (e *testEnv) createAnswer(t *testing.T, userID, questionID uint) *models.Answer {
	t.Helper()
	answer := &models.Answer{
		Content:    "an answer",
		UserID:     userID,
		QuestionID: questionID,
	}
	if err := e.db.Create(answer).Error; err != nil {
		t.Fatalf("Failed to create answer: %v", err)
	}
	return answer
}

func (e *testEnv) reputation(t *testing.T, userID uint) int {
	t.Helper()
	var user models.User
	if err := e.db.First(&user, userID).Error; err != nil {
		t.Fatalf("Failed to reload user %d: %v", userID, err)
	}
	return user.Reputation
}
