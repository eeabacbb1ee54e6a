package model

import (
	"time"
)

type ReviewVote struct {
	ReviewID  uint64    `gorm:"primaryKey" json:"review_id"`
	UserID    uint64    `gorm:"primaryKey;index:idx_review_vote_user" json:"user_id"`
	Value     int8      `gorm:"not null" json:"value"` // 1:赞成, -1:反对
	CreatedAt time.Time `json:"created_at"`
}

func (ReviewVote) TableName() string {
	return "review_votes"
}
