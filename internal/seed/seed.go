package seed

import (
	"fmt"
	"log"

	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumQuestions int
	ShouldClean  bool
	SkipBcrypt   bool
	// MaxDays controls how far back generated content is spread
	MaxDays int
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d questions...", opts.NumUsers, opts.NumQuestions)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	if len(users) == 0 {
		return nil
	}

	questions := make([]*models.Question, 0, opts.NumQuestions)
	for i := 0; i < opts.NumQuestions; i++ {
		author := users[f.rng.Intn(len(users))]
		question, err := f.CreateQuestion(author)
		if err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
		questions = append(questions, question)
	}
	log.Printf("created %d questions", len(questions))

	var answers, stars, views int
	for _, question := range questions {
		// 0-4 answers per question
		for i := 0; i < f.rng.Intn(5); i++ {
			responder := users[f.rng.Intn(len(users))]
			if responder.ID == question.UserID {
				continue
			}
			answer, err := f.CreateAnswer(responder, question)
			if err != nil {
				return fmt.Errorf("failed to create answer: %w", err)
			}
			answers++

			// roughly a third of answers attract a star, never self-awarded
			// and at most one per user per question
			if f.rng.Intn(3) == 0 {
				endorser := users[f.rng.Intn(len(users))]
				if endorser.ID == answer.UserID {
					continue
				}
				var existing int64
				db.Model(&models.Star{}).
					Where("user_id = ? AND question_id = ?", endorser.ID, question.ID).
					Count(&existing)
				if existing > 0 {
					continue
				}
				if _, err := f.CreateStar(endorser, answer); err != nil {
					return fmt.Errorf("failed to create star: %w", err)
				}
				stars++
			}
		}

		// a spread of views per question, mixing known and anonymous readers
		for i := 0; i < f.rng.Intn(20); i++ {
			var viewerID uint
			if f.rng.Intn(2) == 0 {
				viewerID = users[f.rng.Intn(len(users))].ID
			}
			if _, err := f.CreateView(question, viewerID); err != nil {
				return fmt.Errorf("failed to create view: %w", err)
			}
			views++
		}
	}
	log.Printf("created %d answers, %d stars, %d views", answers, stars, views)

	return nil
}

// clearData removes seedable data. Order matters for foreign keys.
func clearData(db *gorm.DB) error {
	tables := []string{"question_views", "stars", "answers", "questions", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
