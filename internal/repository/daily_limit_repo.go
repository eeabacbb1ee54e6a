package repository

import (
	"Lectern/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 配额计数列名，作为唯一入口避免各处手写列名
const (
	QuotaColumnReview   = "review_count"
	QuotaColumnQuestion = "question_count"
)

type DailyLimitRepo interface {
	GetOrCreate(ctx context.Context, userID uint64, date time.Time) (*model.UserDailyLimit, error)
	Get(ctx context.Context, userID uint64, date time.Time) (*model.UserDailyLimit, error)
	ListAll(ctx context.Context) ([]*model.UserDailyLimit, error)
	SetCounts(ctx context.Context, id uint64, reviewCount, questionCount int) error
	DecrementIfPositive(ctx context.Context, userID uint64, date time.Time, column string) (bool, error)
}

type DailyLimitRepoImpl struct {
	db *gorm.DB
}

func NewDailyLimitRepo(db *gorm.DB) DailyLimitRepo {
	return &DailyLimitRepoImpl{db}
}

func (s *DailyLimitRepoImpl) GetOrCreate(ctx context.Context, userID uint64, date time.Time) (*model.UserDailyLimit, error) {
	if err := ensureLimitRow(s.db.WithContext(ctx), userID, date); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, date)
}

func (s *DailyLimitRepoImpl) Get(ctx context.Context, userID uint64, date time.Time) (*model.UserDailyLimit, error) {
	var limit model.UserDailyLimit
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND limit_date = ?", userID, date).
		First(&limit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &limit, nil
}

func (s *DailyLimitRepoImpl) ListAll(ctx context.Context) ([]*model.UserDailyLimit, error) {
	var limits []*model.UserDailyLimit
	err := s.db.WithContext(ctx).
		Order("limit_date DESC, user_id ASC").
		Find(&limits).Error
	return limits, err
}

func (s *DailyLimitRepoImpl) SetCounts(ctx context.Context, id uint64, reviewCount, questionCount int) error {
	return s.db.WithContext(ctx).Model(&model.UserDailyLimit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			QuotaColumnReview:   reviewCount,
			QuotaColumnQuestion: questionCount,
		}).Error
}

func (s *DailyLimitRepoImpl) DecrementIfPositive(ctx context.Context, userID uint64, date time.Time, column string) (bool, error) {
	return decrementIfPositive(s.db.WithContext(ctx), userID, date, column)
}

// ensureLimitRow 懒创建当日计数行，已存在时不做任何事
func ensureLimitRow(tx *gorm.DB, userID uint64, date time.Time) error {
	row := &model.UserDailyLimit{UserID: userID, LimitDate: date}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

// incrementIfBelow 单条条件 UPDATE 完成检查与自增，不存在 check-then-act 竞态，
// 返回是否真的加上了
func incrementIfBelow(tx *gorm.DB, userID uint64, date time.Time, column string, limit int) (bool, error) {
	res := tx.Model(&model.UserDailyLimit{}).
		Where("user_id = ? AND limit_date = ?", userID, date).
		Where(column+" < ?", limit).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	return res.RowsAffected > 0, res.Error
}

// decrementIfPositive 计数为 0 时不再往下减，也不报错
func decrementIfPositive(tx *gorm.DB, userID uint64, date time.Time, column string) (bool, error) {
	res := tx.Model(&model.UserDailyLimit{}).
		Where("user_id = ? AND limit_date = ?", userID, date).
		Where(column+" > ?", 0).
		UpdateColumn(column, gorm.Expr(column+" - 1"))
	return res.RowsAffected > 0, res.Error
}
