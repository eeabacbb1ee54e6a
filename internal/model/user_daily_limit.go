package model

import (
	"time"
)

// UserDailyLimit 每个用户每个日历日一行，计数是内容表的反范式缓存，
// 以内容行为准，偏差由对账任务修复
type UserDailyLimit struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_date,unique" json:"user_id"`
	LimitDate     time.Time `gorm:"type:date;not null;index:idx_user_date,unique;column:limit_date" json:"limit_date"`
	ReviewCount   int       `gorm:"not null;default:0" json:"review_count"`
	QuestionCount int       `gorm:"not null;default:0" json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserDailyLimit) TableName() string {
	return "user_daily_limits"
}
