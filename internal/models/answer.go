package models

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Content    string         `gorm:"not null" json:"content"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	QuestionID uint           `gorm:"not null;index" json:"question_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// StarsCount is not a column; populated from a query-time subquery
	StarsCount int `gorm:"->;-:migration" json:"stars_count"`
}
