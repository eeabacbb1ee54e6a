package model

import (
	"time"
)

type Review struct {
	ID          uint64    `gorm:"primaryKey"`
	ProfessorID uint64    `gorm:"not null;index:idx_review_professor" json:"professor_id"`
	UserID      uint64    `gorm:"not null;index:idx_review_user" json:"user_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Rating      uint8     `gorm:"not null" json:"rating"`
	IsApproved  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}
