package repository

import (
	"Lectern/internal/model"
	"Lectern/internal/pkg/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type QARepo interface {
	// CreateQuestionWithQuota 提问与配额自增同事务，返回 false 表示当日配额已满
	CreateQuestionWithQuota(ctx context.Context, question *model.Question, date time.Time, limit int) (bool, error)
	GetQuestionByID(ctx context.Context, id uint64) (*model.Question, error)
	GetApprovedQuestionByID(ctx context.Context, id uint64) (*model.Question, error)
	ListApprovedQuestionsByProfessor(ctx context.Context, professorID uint64) ([]*model.Question, error)
	ListPendingQuestions(ctx context.Context, limit, offset int) ([]*model.Question, error)
	FindDuplicateQuestion(ctx context.Context, userID, professorID uint64, text string, dayStart, dayEnd time.Time) (*model.Question, error)
	CountQuestionsByUserAndDay(ctx context.Context, userID uint64, dayStart, dayEnd time.Time) (int64, error)
	UpdateQuestionApproval(ctx context.Context, id uint64, approved bool) error
	// DeleteQuestionWithQuota 级联删除回答及其投票，并回退创建日的提问计数
	DeleteQuestionWithQuota(ctx context.Context, question *model.Question) error

	// 回答不占用每日配额
	CreateAnswer(ctx context.Context, answer *model.Answer) error
	FindDuplicateAnswer(ctx context.Context, userID, questionID uint64, text string, dayStart, dayEnd time.Time) (*model.Answer, error)
	GetAnswerByID(ctx context.Context, id uint64) (*model.Answer, error)
	GetApprovedAnswerByID(ctx context.Context, id uint64) (*model.Answer, error)
	ListApprovedAnswersByQuestion(ctx context.Context, questionID uint64) ([]*model.Answer, error)
	ListPendingAnswers(ctx context.Context, limit, offset int) ([]*model.Answer, error)
	UpdateAnswerApproval(ctx context.Context, id uint64, approved bool) error
	DeleteAnswer(ctx context.Context, id uint64) error

	GetAnswerVote(ctx context.Context, answerID, userID uint64) (*model.AnswerVote, error)
	ToggleAnswerVote(ctx context.Context, answerID, userID uint64, value int8) error
	CountAnswerVotes(ctx context.Context, answerID uint64) (likes int64, dislikes int64, err error)
}

type QARepoImpl struct {
	db *gorm.DB
}

func NewQARepo(db *gorm.DB) QARepo {
	return &QARepoImpl{db}
}

func (s *QARepoImpl) CreateQuestionWithQuota(ctx context.Context, question *model.Question, date time.Time, limit int) (bool, error) {
	ok := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureLimitRow(tx, question.UserID, date); err != nil {
			return err
		}
		applied, err := incrementIfBelow(tx, question.UserID, date, QuotaColumnQuestion, limit)
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
		if err = tx.Create(question).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

func (s *QARepoImpl) GetQuestionByID(ctx context.Context, id uint64) (*model.Question, error) {
	var question model.Question
	err := s.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (s *QARepoImpl) GetApprovedQuestionByID(ctx context.Context, id uint64) (*model.Question, error) {
	var question model.Question
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_approved = ?", id, true).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (s *QARepoImpl) ListApprovedQuestionsByProfessor(ctx context.Context, professorID uint64) ([]*model.Question, error) {
	var questions []*model.Question
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("professor_id = ? AND is_approved = ?", professorID, true).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (s *QARepoImpl) ListPendingQuestions(ctx context.Context, limit, offset int) ([]*model.Question, error) {
	var questions []*model.Question
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&questions).Error
	return questions, err
}

func (s *QARepoImpl) FindDuplicateQuestion(ctx context.Context, userID, professorID uint64, text string, dayStart, dayEnd time.Time) (*model.Question, error) {
	var question model.Question
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND professor_id = ? AND text = ?", userID, professorID, text).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (s *QARepoImpl) CountQuestionsByUserAndDay(ctx context.Context, userID uint64, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Question{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Count(&count).Error
	return count, err
}

func (s *QARepoImpl) UpdateQuestionApproval(ctx context.Context, id uint64, approved bool) error {
	return s.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (s *QARepoImpl) DeleteQuestionWithQuota(ctx context.Context, question *model.Question) error {
	createdDate := util.DateOf(question.CreatedAt)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answerIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.Answer{}).
			Select("id").
			Where("question_id = ?", question.ID)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&model.AnswerVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, question.ID).Error; err != nil {
			return err
		}
		if _, err := decrementIfPositive(tx, question.UserID, createdDate, QuotaColumnQuestion); err != nil {
			return err
		}
		return nil
	})
}

func (s *QARepoImpl) CreateAnswer(ctx context.Context, answer *model.Answer) error {
	return s.db.WithContext(ctx).Create(answer).Error
}

func (s *QARepoImpl) FindDuplicateAnswer(ctx context.Context, userID, questionID uint64, text string, dayStart, dayEnd time.Time) (*model.Answer, error) {
	var answer model.Answer
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ? AND text = ?", userID, questionID, text).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (s *QARepoImpl) GetAnswerByID(ctx context.Context, id uint64) (*model.Answer, error) {
	var answer model.Answer
	err := s.db.WithContext(ctx).First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (s *QARepoImpl) GetApprovedAnswerByID(ctx context.Context, id uint64) (*model.Answer, error) {
	var answer model.Answer
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_approved = ?", id, true).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

// ListApprovedAnswersByQuestion 回答按时间正序，保持问答的阅读顺序
func (s *QARepoImpl) ListApprovedAnswersByQuestion(ctx context.Context, questionID uint64) ([]*model.Answer, error) {
	var answers []*model.Answer
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("question_id = ? AND is_approved = ?", questionID, true).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

func (s *QARepoImpl) ListPendingAnswers(ctx context.Context, limit, offset int) ([]*model.Answer, error) {
	var answers []*model.Answer
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&answers).Error
	return answers, err
}

func (s *QARepoImpl) UpdateAnswerApproval(ctx context.Context, id uint64, approved bool) error {
	return s.db.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (s *QARepoImpl) DeleteAnswer(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&model.AnswerVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Answer{}, id).Error
	})
}

func (s *QARepoImpl) GetAnswerVote(ctx context.Context, answerID, userID uint64) (*model.AnswerVote, error) {
	var vote model.AnswerVote
	err := s.db.WithContext(ctx).
		Where("answer_id = ? AND user_id = ?", answerID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (s *QARepoImpl) ToggleAnswerVote(ctx context.Context, answerID, userID uint64, value int8) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote model.AnswerVote
		err := tx.Where("answer_id = ? AND user_id = ?", answerID, userID).First(&vote).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&model.AnswerVote{
				AnswerID:  answerID,
				UserID:    userID,
				Value:     value,
				CreatedAt: time.Now(),
			}).Error
		}
		if vote.Value == value {
			return tx.Where("answer_id = ? AND user_id = ?", answerID, userID).
				Delete(&model.AnswerVote{}).Error
		}
		return tx.Model(&model.AnswerVote{}).
			Where("answer_id = ? AND user_id = ?", answerID, userID).
			Update("value", value).Error
	})
}

func (s *QARepoImpl) CountAnswerVotes(ctx context.Context, answerID uint64) (int64, int64, error) {
	var likes, dislikes int64
	err := s.db.WithContext(ctx).Model(&model.AnswerVote{}).
		Where("answer_id = ? AND value = ?", answerID, 1).
		Count(&likes).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).Model(&model.AnswerVote{}).
		Where("answer_id = ? AND value = ?", answerID, -1).
		Count(&dislikes).Error
	return likes, dislikes, err
}
