package model

import (
	"time"
)

type Answer struct {
	ID         uint64    `gorm:"primaryKey"`
	QuestionID uint64    `gorm:"not null;index:idx_answer_question" json:"question_id"`
	UserID     uint64    `gorm:"not null;index:idx_answer_user" json:"user_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsApproved bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Answer) TableName() string {
	return "answers"
}
