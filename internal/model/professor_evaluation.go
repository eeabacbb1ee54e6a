package model

import (
	"time"
)

// ProfessorEvaluation 每个用户对每位教授只有一行，六个维度取值 1~5
type ProfessorEvaluation struct {
	ID                 uint64    `gorm:"primaryKey"`
	ProfessorID        uint64    `gorm:"not null;index:idx_eval_prof_user,unique" json:"professor_id"`
	UserID             uint64    `gorm:"not null;index:idx_eval_prof_user,unique" json:"user_id"`
	TeachingMethod     uint8     `gorm:"not null;default:3" json:"teaching_method"`
	GradingFlexibility uint8     `gorm:"not null;default:3" json:"grading_flexibility"`
	ExamDifficulty     uint8     `gorm:"not null;default:3" json:"exam_difficulty"`
	SubjectKnowledge   uint8     `gorm:"not null;default:3" json:"subject_knowledge"`
	Respect            uint8     `gorm:"not null;default:3" json:"respect"`
	StudentInteraction uint8     `gorm:"not null;default:3" json:"student_interaction"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ProfessorEvaluation) TableName() string {
	return "professor_evaluations"
}

// Scores 按固定顺序返回六个维度
func (e *ProfessorEvaluation) Scores() [6]uint8 {
	return [6]uint8{
		e.TeachingMethod,
		e.GradingFlexibility,
		e.ExamDifficulty,
		e.SubjectKnowledge,
		e.Respect,
		e.StudentInteraction,
	}
}
