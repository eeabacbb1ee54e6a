package handler

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"

	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	evaluationSvc service.EvaluationService
}

func NewEvaluationHandler(evaluationSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationSvc: evaluationSvc,
	}
}

func (s *EvaluationHandler) Submit(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}
	var evalDTO dto.EvaluationDTO
	if err := c.ShouldBind(&evalDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.evaluationSvc.Submit(c.Request.Context(), professorID, c.GetUint64("user_id"), &evalDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Get 返回自己的打分和全体汇总
func (s *EvaluationHandler) Get(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	mine, err := s.evaluationSvc.GetMine(ctx, professorID, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := s.evaluationSvc.Summary(ctx, professorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"mine":    mine,
		"summary": summary,
	})
}
