package service

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/go-sql-driver/mysql"
)

type VoteService interface {
	// CastReviewVote 同值撤销、异值覆盖，返回最新计数
	CastReviewVote(ctx context.Context, reviewID, userID uint64, value int8) (*dto.VoteResultDTO, error)
	CastAnswerVote(ctx context.Context, answerID, userID uint64, value int8) (*dto.VoteResultDTO, error)
}

type VoteServiceImpl struct {
	reviewRepo repository.ReviewRepo
	qaRepo     repository.QARepo
}

func NewVoteService(reviewRepo repository.ReviewRepo, qaRepo repository.QARepo) VoteService {
	return &VoteServiceImpl{
		reviewRepo: reviewRepo,
		qaRepo:     qaRepo,
	}
}

func (s *VoteServiceImpl) CastReviewVote(ctx context.Context, reviewID, userID uint64, value int8) (*dto.VoteResultDTO, error) {
	if value != consts.VoteUp && value != consts.VoteDown {
		return nil, ErrVoteValueInvalid
	}

	review, err := s.reviewRepo.GetApprovedByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	err = s.reviewRepo.ToggleVote(ctx, reviewID, userID, value)
	if isDuplicateError(err) {
		// 并发插入撞唯一键，重试一次走覆盖/撤销分支
		log.WarnContext(ctx, "vote insert raced, retrying", "review_id", reviewID, "user_id", userID)
		err = s.reviewRepo.ToggleVote(ctx, reviewID, userID, value)
	}
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := s.reviewRepo.CountVotes(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	vote, err := s.reviewRepo.GetVote(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.VoteResultDTO{Likes: likes, Dislikes: dislikes}
	if vote != nil {
		result.MyVote = vote.Value
	}
	return result, nil
}

func (s *VoteServiceImpl) CastAnswerVote(ctx context.Context, answerID, userID uint64, value int8) (*dto.VoteResultDTO, error) {
	if value != consts.VoteUp && value != consts.VoteDown {
		return nil, ErrVoteValueInvalid
	}

	answer, err := s.qaRepo.GetApprovedAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}

	err = s.qaRepo.ToggleAnswerVote(ctx, answerID, userID, value)
	if isDuplicateError(err) {
		log.WarnContext(ctx, "vote insert raced, retrying", "answer_id", answerID, "user_id", userID)
		err = s.qaRepo.ToggleAnswerVote(ctx, answerID, userID, value)
	}
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := s.qaRepo.CountAnswerVotes(ctx, answerID)
	if err != nil {
		return nil, err
	}
	vote, err := s.qaRepo.GetAnswerVote(ctx, answerID, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.VoteResultDTO{Likes: likes, Dislikes: dislikes}
	if vote != nil {
		result.MyVote = vote.Value
	}
	return result, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
