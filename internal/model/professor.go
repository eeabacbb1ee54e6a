package model

import (
	"time"
)

type Professor struct {
	ID         uint64    `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(200);not null;index:idx_prof_name" json:"name"`
	Department string    `gorm:"type:varchar(200)" json:"department"`
	Bio        string    `gorm:"type:text" json:"bio"`
	ImageURL   string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Professor) TableName() string {
	return "professors"
}
