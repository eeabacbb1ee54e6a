package handler

import (
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	reviewSvc service.ReviewService
	qaSvc     service.QAService
}

func NewModerationHandler(reviewSvc service.ReviewService, qaSvc service.QAService) *ModerationHandler {
	return &ModerationHandler{
		reviewSvc: reviewSvc,
		qaSvc:     qaSvc,
	}
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *ModerationHandler) PendingReviews(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := s.reviewSvc.ListPending(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ModerationHandler) PendingQuestions(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := s.qaSvc.ListPendingQuestions(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ModerationHandler) PendingAnswers(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := s.qaSvc.ListPendingAnswers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ModerationHandler) act(c *gin.Context, param string, fn func(uint64) error) {
	id, ok := parseIDParam(c, param)
	if !ok {
		return
	}
	if err := fn(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ModerationHandler) ApproveReview(c *gin.Context) {
	s.act(c, "review_id", func(id uint64) error {
		return s.reviewSvc.Approve(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) RejectReview(c *gin.Context) {
	s.act(c, "review_id", func(id uint64) error {
		return s.reviewSvc.Reject(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) DeleteReview(c *gin.Context) {
	s.act(c, "review_id", func(id uint64) error {
		return s.reviewSvc.Delete(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) ApproveQuestion(c *gin.Context) {
	s.act(c, "question_id", func(id uint64) error {
		return s.qaSvc.ApproveQuestion(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) RejectQuestion(c *gin.Context) {
	s.act(c, "question_id", func(id uint64) error {
		return s.qaSvc.RejectQuestion(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) DeleteQuestion(c *gin.Context) {
	s.act(c, "question_id", func(id uint64) error {
		return s.qaSvc.DeleteQuestion(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) ApproveAnswer(c *gin.Context) {
	s.act(c, "answer_id", func(id uint64) error {
		return s.qaSvc.ApproveAnswer(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) RejectAnswer(c *gin.Context) {
	s.act(c, "answer_id", func(id uint64) error {
		return s.qaSvc.RejectAnswer(c.Request.Context(), id)
	})
}

func (s *ModerationHandler) DeleteAnswer(c *gin.Context) {
	s.act(c, "answer_id", func(id uint64) error {
		return s.qaSvc.DeleteAnswer(c.Request.Context(), id)
	})
}
