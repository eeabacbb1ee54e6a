package repository

import (
	"Lectern/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationRepo interface {
	// Upsert 以 (professor_id, user_id) 为准，重复提交覆盖六个维度
	Upsert(ctx context.Context, eval *model.ProfessorEvaluation) error
	GetByProfessorAndUser(ctx context.Context, professorID, userID uint64) (*model.ProfessorEvaluation, error)
	ListByProfessor(ctx context.Context, professorID uint64) ([]*model.ProfessorEvaluation, error)
}

type EvaluationRepoImpl struct {
	db *gorm.DB
}

func NewEvaluationRepo(db *gorm.DB) EvaluationRepo {
	return &EvaluationRepoImpl{db}
}

func (s *EvaluationRepoImpl) Upsert(ctx context.Context, eval *model.ProfessorEvaluation) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "professor_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"teaching_method",
			"grading_flexibility",
			"exam_difficulty",
			"subject_knowledge",
			"respect",
			"student_interaction",
			"updated_at",
		}),
	}).Create(eval).Error
}

func (s *EvaluationRepoImpl) GetByProfessorAndUser(ctx context.Context, professorID, userID uint64) (*model.ProfessorEvaluation, error) {
	var eval model.ProfessorEvaluation
	err := s.db.WithContext(ctx).
		Where("professor_id = ? AND user_id = ?", professorID, userID).
		First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eval, nil
}

func (s *EvaluationRepoImpl) ListByProfessor(ctx context.Context, professorID uint64) ([]*model.ProfessorEvaluation, error) {
	var evals []*model.ProfessorEvaluation
	err := s.db.WithContext(ctx).
		Where("professor_id = ?", professorID).
		Find(&evals).Error
	return evals, err
}
