package model

import (
	"time"
)

type Question struct {
	ID          uint64    `gorm:"primaryKey"`
	ProfessorID uint64    `gorm:"not null;index:idx_question_professor" json:"professor_id"`
	UserID      uint64    `gorm:"not null;index:idx_question_user" json:"user_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	IsApproved  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`

	User    User     `gorm:"foreignKey:UserID;references:ID"`
	Answers []Answer `gorm:"foreignKey:QuestionID;references:ID"`
}

func (Question) TableName() string {
	return "questions"
}
