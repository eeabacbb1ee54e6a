package service

import (
	"Lectern/internal/api/config"
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type QuotaService interface {
	DailyStats(ctx context.Context, userID uint64) (*dto.DailyStatsDTO, error)
	// ReconcileAll 用内容表重算计数行并纠偏，幂等
	ReconcileAll(ctx context.Context) (*dto.ReconcileResultDTO, error)
}

type QuotaServiceImpl struct {
	dailyLimitRepo repository.DailyLimitRepo
	reviewRepo     repository.ReviewRepo
	qaRepo         repository.QARepo
}

func NewQuotaService(dailyLimitRepo repository.DailyLimitRepo, reviewRepo repository.ReviewRepo, qaRepo repository.QARepo) QuotaService {
	return &QuotaServiceImpl{
		dailyLimitRepo: dailyLimitRepo,
		reviewRepo:     reviewRepo,
		qaRepo:         qaRepo,
	}
}

func (s *QuotaServiceImpl) DailyStats(ctx context.Context, userID uint64) (*dto.DailyStatsDTO, error) {
	today := util.Today()
	stats := &dto.DailyStatsDTO{
		Date:          today.Format(time.DateOnly),
		ReviewLimit:   config.Cfg.Quota.DailyReviewLimit,
		QuestionLimit: config.Cfg.Quota.DailyQuestionLimit,
	}

	row, err := s.dailyLimitRepo.Get(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if row != nil {
		stats.ReviewsUsed = row.ReviewCount
		stats.QuestionsUsed = row.QuestionCount
	}
	stats.ReviewsRemaining = remaining(stats.ReviewLimit, stats.ReviewsUsed)
	stats.QuestionsRemaining = remaining(stats.QuestionLimit, stats.QuestionsUsed)
	return stats, nil
}

// remaining 计数被手工改动或对账前可能超限，剩余量不出现负数
func remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}

func (s *QuotaServiceImpl) ReconcileAll(ctx context.Context) (*dto.ReconcileResultDTO, error) {
	rows, err := s.dailyLimitRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ReconcileResultDTO{}
	for _, row := range rows {
		result.Checked++

		dayStart, dayEnd := util.DayBounds(row.LimitDate)
		reviewCount, err := s.reviewRepo.CountByUserAndDay(ctx, row.UserID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		questionCount, err := s.qaRepo.CountQuestionsByUserAndDay(ctx, row.UserID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		if int(reviewCount) == row.ReviewCount && int(questionCount) == row.QuestionCount {
			continue
		}

		log.InfoContext(ctx, "quota counter drift corrected",
			"user_id", row.UserID,
			"date", row.LimitDate.Format(time.DateOnly),
			"review_count", row.ReviewCount, "review_actual", reviewCount,
			"question_count", row.QuestionCount, "question_actual", questionCount)

		if err = s.dailyLimitRepo.SetCounts(ctx, row.ID, int(reviewCount), int(questionCount)); err != nil {
			return nil, err
		}
		result.Corrected++
	}
	return result, nil
}
