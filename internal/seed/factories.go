// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var interestPool = []string{
	"go", "python", "javascript", "rust", "databases", "kubernetes",
	"machine learning", "web development", "devops", "security",
	"distributed systems", "frontend", "backend", "cloud", "testing",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Interests: f.randomInterests(),
		WorkArea:  gofakeit.JobTitle(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateQuestion constructs and persists a sample question for the given user.
func (f *Factory) CreateQuestion(user *models.User, overrides ...func(*models.Question)) (*models.Question, error) {
	question := &models.Question{
		Title:   strings.TrimSuffix(gofakeit.Question(), "?") + "?",
		Content: gofakeit.Paragraph(1, 3, 8, "\n"),
		Tags:    f.randomInterests(),
		UserID:  user.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	question.CreatedAt = time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour)

	for _, override := range overrides {
		override(question)
	}

	if err := f.db.Create(question).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(user).Update("questions_count", gorm.Expr("questions_count + ?", 1)).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// CreateAnswer constructs and persists a sample answer.
func (f *Factory) CreateAnswer(user *models.User, question *models.Question, overrides ...func(*models.Answer)) (*models.Answer, error) {
	answer := &models.Answer{
		Content:    gofakeit.Paragraph(1, 2, 10, "\n"),
		UserID:     user.ID,
		QuestionID: question.ID,
		CreatedAt:  question.CreatedAt.Add(time.Duration(f.rng.Intn(72)+1) * time.Hour),
	}

	for _, override := range overrides {
		override(answer)
	}

	if err := f.db.Create(answer).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(user).Update("answers_count", gorm.Expr("answers_count + ?", 1)).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

// CreateStar persists a star for the answer and grants the answer author a
// reputation point, mirroring what the API does.
func (f *Factory) CreateStar(user *models.User, answer *models.Answer) (*models.Star, error) {
	star := &models.Star{
		UserID:     user.ID,
		QuestionID: answer.QuestionID,
		AnswerID:   answer.ID,
	}
	if err := f.db.Create(star).Error; err != nil {
		return nil, err
	}
	err := f.db.Model(&models.User{}).
		Where("id = ?", answer.UserID).
		Update("reputation", gorm.Expr("reputation + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	return star, nil
}

// CreateView persists a view record and bumps the question's counter.
func (f *Factory) CreateView(question *models.Question, userID uint) (*models.QuestionView, error) {
	view := &models.QuestionView{
		QuestionID: question.ID,
		IPAddress:  gofakeit.IPv4Address(),
		UserAgent:  gofakeit.UserAgent(),
		CreatedAt:  question.CreatedAt.Add(time.Duration(f.rng.Intn(96)) * time.Hour),
	}
	if userID != 0 {
		view.UserID = &userID
	}
	if err := f.db.Create(view).Error; err != nil {
		return nil, err
	}
	err := f.db.Model(question).Update("views_count", gorm.Expr("views_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (f *Factory) randomInterests() string {
	n := f.rng.Intn(3) + 2
	picks := make([]string, 0, n)
	seen := map[int]bool{}
	for len(picks) < n {
		i := f.rng.Intn(len(interestPool))
		if !seen[i] {
			seen[i] = true
			picks = append(picks, interestPool[i])
		}
	}
	return strings.Join(picks, ", ")
}
