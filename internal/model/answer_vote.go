package model

import (
	"time"
)

type AnswerVote struct {
	AnswerID  uint64    `gorm:"primaryKey" json:"answer_id"`
	UserID    uint64    `gorm:"primaryKey;index:idx_answer_vote_user" json:"user_id"`
	Value     int8      `gorm:"not null" json:"value"` // 1:赞成, -1:反对
	CreatedAt time.Time `json:"created_at"`
}

func (AnswerVote) TableName() string {
	return "answer_votes"
}
