package models

import "time"

// Star records a user's endorsement of one answer under one question.
// The combination of UserID and QuestionID must be unique: a user stars
// at most one answer per question. Rows are hard-deleted on unstar so the
// pair can be starred again later.
type Star struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"question_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	CreatedAt  time.Time `json:"created_at"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Question Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Answer   Answer   `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
}
