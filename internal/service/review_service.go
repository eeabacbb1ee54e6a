package service

import (
	"Lectern/internal/api/config"
	"Lectern/internal/api/dto"
	"Lectern/internal/model"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ReviewService interface {
	// Submit 配额内落库，重复提交返回 Duplicate 标记且不扣配额
	Submit(ctx context.Context, userID, professorID uint64, text string, rating uint8) (*dto.SubmissionResultDTO, error)
	ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*dto.ReviewDTO, error)
	ListPending(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error)
	Approve(ctx context.Context, reviewID uint64) error
	Reject(ctx context.Context, reviewID uint64) error
	Delete(ctx context.Context, reviewID uint64) error
}

type ReviewServiceImpl struct {
	reviewRepo    repository.ReviewRepo
	professorRepo repository.ProfessorRepo
}

func NewReviewService(reviewRepo repository.ReviewRepo, professorRepo repository.ProfessorRepo) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:    reviewRepo,
		professorRepo: professorRepo,
	}
}

func (s *ReviewServiceImpl) Submit(ctx context.Context, userID, professorID uint64, text string, rating uint8) (*dto.SubmissionResultDTO, error) {
	if rating < consts.EvaluationScoreMin || rating > consts.EvaluationScoreMax {
		return nil, ErrRatingOutOfRange
	}

	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, ErrProfessorNotFound
	}

	dayStart, dayEnd := util.DayBounds(util.Today())
	duplicate, err := s.reviewRepo.FindDuplicate(ctx, userID, professorID, text, rating, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		// 同日同内容视为重复点击，不报错也不扣配额
		return &dto.SubmissionResultDTO{
			FormType:  "review",
			ContentID: duplicate.ID,
			Duplicate: true,
			Message:   "您今天已提交过相同的评价",
		}, nil
	}

	review := &model.Review{
		ProfessorID: professorID,
		UserID:      userID,
		Text:        text,
		Rating:      rating,
		CreatedAt:   time.Now(),
	}
	limit := config.Cfg.Quota.DailyReviewLimit
	ok, err := s.reviewRepo.CreateWithQuota(ctx, review, util.Today(), limit)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.WarnContext(ctx, "review quota exceeded", "user_id", userID, "limit", limit)
		return nil, ErrReviewQuotaExceeded
	}

	return &dto.SubmissionResultDTO{
		FormType:  "review",
		ContentID: review.ID,
		Message:   "评价已提交，审核通过后展示",
	}, nil
}

func (s *ReviewServiceImpl) ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*dto.ReviewDTO, error) {
	reviews, err := s.reviewRepo.ListApprovedByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		likes, dislikes, err := s.reviewRepo.CountVotes(ctx, review.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.ReviewDTO{
			ID:        review.ID,
			UserID:    review.UserID,
			Username:  review.User.Username,
			Text:      review.Text,
			Rating:    review.Rating,
			Likes:     likes,
			Dislikes:  dislikes,
			CreatedAt: review.CreatedAt.Format(time.DateTime),
		})
	}
	return result, nil
}

func (s *ReviewServiceImpl) ListPending(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error) {
	reviews, err := s.reviewRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PendingContentDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, &dto.PendingContentDTO{
			ID:          review.ID,
			ContentType: "review",
			ProfessorID: review.ProfessorID,
			UserID:      review.UserID,
			Username:    review.User.Username,
			Text:        review.Text,
			Rating:      review.Rating,
			CreatedAt:   review.CreatedAt.Format(time.DateTime),
		})
	}
	return result, nil
}

func (s *ReviewServiceImpl) Approve(ctx context.Context, reviewID uint64) error {
	return s.setApproval(ctx, reviewID, true)
}

func (s *ReviewServiceImpl) Reject(ctx context.Context, reviewID uint64) error {
	return s.setApproval(ctx, reviewID, false)
}

func (s *ReviewServiceImpl) setApproval(ctx context.Context, reviewID uint64, approved bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.UpdateApproval(ctx, reviewID, approved)
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, reviewID uint64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.DeleteWithQuota(ctx, review)
}
