package handler

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
}

func NewVoteHandler(voteSvc service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteSvc: voteSvc,
	}
}

func (s *VoteHandler) VoteReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}
	var voteDTO dto.VoteDTO
	if err := c.ShouldBind(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.voteSvc.CastReviewVote(c.Request.Context(), reviewID, c.GetUint64("user_id"), voteDTO.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *VoteHandler) VoteAnswer(c *gin.Context) {
	answerID, ok := parseIDParam(c, "answer_id")
	if !ok {
		return
	}
	var voteDTO dto.VoteDTO
	if err := c.ShouldBind(&voteDTO); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.voteSvc.CastAnswerVote(c.Request.Context(), answerID, c.GetUint64("user_id"), voteDTO.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
