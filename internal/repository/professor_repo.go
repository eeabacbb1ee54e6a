package repository

import (
	"Lectern/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ProfessorRepo interface {
	Create(ctx context.Context, professor *model.Professor) error
	GetByID(ctx context.Context, id uint64) (*model.Professor, error)
	List(ctx context.Context) ([]*model.Professor, error)
	// Search 按姓名或院系做大小写不敏感的模糊匹配
	Search(ctx context.Context, query string) ([]*model.Professor, error)
	Update(ctx context.Context, professor *model.Professor) error
	// DeleteCascade 删除教授及其全部评价、问答、打分和投票
	DeleteCascade(ctx context.Context, id uint64) error
}

type ProfessorRepoImpl struct {
	db *gorm.DB
}

func NewProfessorRepo(db *gorm.DB) ProfessorRepo {
	return &ProfessorRepoImpl{db}
}

func (s *ProfessorRepoImpl) Create(ctx context.Context, professor *model.Professor) error {
	return s.db.WithContext(ctx).Create(professor).Error
}

func (s *ProfessorRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Professor, error) {
	var professor model.Professor
	err := s.db.WithContext(ctx).First(&professor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professor, nil
}

func (s *ProfessorRepoImpl) List(ctx context.Context) ([]*model.Professor, error) {
	var professors []*model.Professor
	err := s.db.WithContext(ctx).Order("name ASC").Find(&professors).Error
	return professors, err
}

func (s *ProfessorRepoImpl) Search(ctx context.Context, query string) ([]*model.Professor, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var professors []*model.Professor
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(department) LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&professors).Error
	return professors, err
}

func (s *ProfessorRepoImpl) Update(ctx context.Context, professor *model.Professor) error {
	return s.db.WithContext(ctx).Save(professor).Error
}

// DeleteCascade 绕过配额回退钩子，计数偏差交给对账任务修复
func (s *ProfessorRepoImpl) DeleteCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.Review{}).
			Select("id").
			Where("professor_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&model.ReviewVote{}).Error; err != nil {
			return err
		}

		questionIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.Question{}).
			Select("id").
			Where("professor_id = ?", id)
		answerIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.Answer{}).
			Select("id").
			Where("question_id IN (?)", questionIDs)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&model.AnswerVote{}).Error; err != nil {
			return err
		}
		questionIDs = tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.Question{}).
			Select("id").
			Where("professor_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("professor_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}

		if err := tx.Where("professor_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("professor_id = ?", id).Delete(&model.ProfessorEvaluation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Professor{}, id).Error
	})
}
