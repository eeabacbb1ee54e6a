package repository

import (
	"Lectern/internal/model"
	"Lectern/internal/pkg/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReviewRepo interface {
	// CreateWithQuota 在同一事务里完成配额自增和评价落库，
	// 返回 false 表示当日配额已满，未写入任何数据
	CreateWithQuota(ctx context.Context, review *model.Review, date time.Time, limit int) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.Review, error)
	GetApprovedByID(ctx context.Context, id uint64) (*model.Review, error)
	ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*model.Review, error)
	ListPending(ctx context.Context, limit, offset int) ([]*model.Review, error)
	FindDuplicate(ctx context.Context, userID, professorID uint64, text string, rating uint8, dayStart, dayEnd time.Time) (*model.Review, error)
	CountByUserAndDay(ctx context.Context, userID uint64, dayStart, dayEnd time.Time) (int64, error)
	// ApprovedRatingStats 只统计已审核评价，count 为 0 时 avg 无意义
	ApprovedRatingStats(ctx context.Context, professorID uint64) (count int64, avg float64, err error)
	UpdateApproval(ctx context.Context, id uint64, approved bool) error
	// DeleteWithQuota 删除评价及其投票，并回退作者在创建日的配额计数，
	// 计数行缺失或已为 0 时删除照常成功
	DeleteWithQuota(ctx context.Context, review *model.Review) error

	GetVote(ctx context.Context, reviewID, userID uint64) (*model.ReviewVote, error)
	ToggleVote(ctx context.Context, reviewID, userID uint64, value int8) error
	CountVotes(ctx context.Context, reviewID uint64) (likes int64, dislikes int64, err error)
}

type ReviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &ReviewRepoImpl{db}
}

func (s *ReviewRepoImpl) CreateWithQuota(ctx context.Context, review *model.Review, date time.Time, limit int) (bool, error) {
	ok := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureLimitRow(tx, review.UserID, date); err != nil {
			return err
		}
		applied, err := incrementIfBelow(tx, review.UserID, date, QuotaColumnReview, limit)
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
		if err = tx.Create(review).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

func (s *ReviewRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewRepoImpl) GetApprovedByID(ctx context.Context, id uint64) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_approved = ?", id, true).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListApprovedByProfessor 公开可见的评价，按创建时间倒序
func (s *ReviewRepoImpl) ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*model.Review, error) {
	var reviews []*model.Review
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("professor_id = ? AND is_approved = ?", professorID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepoImpl) ListPending(ctx context.Context, limit, offset int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepoImpl) FindDuplicate(ctx context.Context, userID, professorID uint64, text string, rating uint8, dayStart, dayEnd time.Time) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND professor_id = ? AND text = ? AND rating = ?", userID, professorID, text, rating).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewRepoImpl) CountByUserAndDay(ctx context.Context, userID uint64, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Count(&count).Error
	return count, err
}

func (s *ReviewRepoImpl) ApprovedRatingStats(ctx context.Context, professorID uint64) (int64, float64, error) {
	var row struct {
		Count int64
		Avg   float64
	}
	err := s.db.WithContext(ctx).Model(&model.Review{}).
		Select("COUNT(id) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("professor_id = ? AND is_approved = ?", professorID, true).
		Scan(&row).Error
	return row.Count, row.Avg, err
}

func (s *ReviewRepoImpl) UpdateApproval(ctx context.Context, id uint64, approved bool) error {
	return s.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (s *ReviewRepoImpl) DeleteWithQuota(ctx context.Context, review *model.Review) error {
	createdDate := util.DateOf(review.CreatedAt)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", review.ID).Delete(&model.ReviewVote{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Review{}, review.ID).Error; err != nil {
			return err
		}
		// 回退创建日而非今日的计数，行缺失或为 0 不影响删除
		if _, err := decrementIfPositive(tx, review.UserID, createdDate, QuotaColumnReview); err != nil {
			return err
		}
		return nil
	})
}

func (s *ReviewRepoImpl) GetVote(ctx context.Context, reviewID, userID uint64) (*model.ReviewVote, error) {
	var vote model.ReviewVote
	err := s.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// ToggleVote 同值再投视为撤销，异值覆盖，整个判定在一个事务里完成
func (s *ReviewRepoImpl) ToggleVote(ctx context.Context, reviewID, userID uint64, value int8) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote model.ReviewVote
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&vote).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&model.ReviewVote{
				ReviewID:  reviewID,
				UserID:    userID,
				Value:     value,
				CreatedAt: time.Now(),
			}).Error
		}
		if vote.Value == value {
			return tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
				Delete(&model.ReviewVote{}).Error
		}
		return tx.Model(&model.ReviewVote{}).
			Where("review_id = ? AND user_id = ?", reviewID, userID).
			Update("value", value).Error
	})
}

func (s *ReviewRepoImpl) CountVotes(ctx context.Context, reviewID uint64) (int64, int64, error) {
	var likes, dislikes int64
	err := s.db.WithContext(ctx).Model(&model.ReviewVote{}).
		Where("review_id = ? AND value = ?", reviewID, 1).
		Count(&likes).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).Model(&model.ReviewVote{}).
		Where("review_id = ? AND value = ?", reviewID, -1).
		Count(&dislikes).Error
	return likes, dislikes, err
}
