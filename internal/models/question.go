package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:300;not null;index" json:"title"`
	Content string `gorm:"not null" json:"content"`
	// Tags is a comma-separated list, matched as case-insensitive substrings
	// by search and the personalized feed.
	Tags   string `gorm:"size:300" json:"tags"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	// ViewsCount is the authoritative denormalized total of accepted views.
	// Mutated only by the view tracker.
	ViewsCount int            `gorm:"not null;default:0" json:"views_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// AnswersCount is not a column; populated from a query-time subquery
	AnswersCount int `gorm:"->;-:migration" json:"answers_count"`
	// StarsCount is not a column; populated from a query-time subquery
	StarsCount int `gorm:"->;-:migration" json:"stars_count"`
	// TrendingScore is only populated by the enhanced trending listing
	TrendingScore int `gorm:"->;-:migration" json:"trending_score,omitempty"`
	// Starred indicates whether the current requesting user starred an answer
	// under this question
	Starred bool `gorm:"->;-:migration" json:"starred"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}
