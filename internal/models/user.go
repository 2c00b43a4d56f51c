// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered member of the platform.
// QuestionsCount, AnswersCount and Reputation are denormalized counters;
// Reputation is mutated only by star/unstar and never drops below zero.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Interests      string         `gorm:"size:500" json:"interests"`
	WorkArea       string         `gorm:"size:200" json:"work_area"`
	QuestionsCount int            `gorm:"not null;default:0" json:"questions_count"`
	AnswersCount   int            `gorm:"not null;default:0" json:"answers_count"`
	Reputation     int            `gorm:"not null;default:0" json:"reputation"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Questions []Question `gorm:"foreignKey:UserID" json:"questions,omitempty"`
	Answers   []Answer   `gorm:"foreignKey:UserID" json:"answers,omitempty"`
}
