package models

import "time"

// QuestionView is an append-only log entry for a question view event.
// Rows are only ever inserted and queried to decide whether a new view
// should bump the question's views_count; they are never updated.
type QuestionView struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"`
	IPAddress  string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"size:500" json:"-"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
