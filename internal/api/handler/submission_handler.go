package handler

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	reviewSvc service.ReviewService
	qaSvc     service.QAService
}

func NewSubmissionHandler(reviewSvc service.ReviewService, qaSvc service.QAService) *SubmissionHandler {
	return &SubmissionHandler{
		reviewSvc: reviewSvc,
		qaSvc:     qaSvc,
	}
}

// Submit 教授页的统一提交入口，按 form_type 分流
func (s *SubmissionHandler) Submit(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}

	var submissionDTO dto.SubmissionDTO
	if err := c.ShouldBind(&submissionDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	ctx := c.Request.Context()

	var result *dto.SubmissionResultDTO
	var err error
	switch submissionDTO.FormType {
	case "review":
		if submissionDTO.Rating == nil {
			response.Error(c, service.ErrRatingOutOfRange)
			return
		}
		result, err = s.reviewSvc.Submit(ctx, userID, professorID, submissionDTO.Text, *submissionDTO.Rating)
	case "question":
		result, err = s.qaSvc.SubmitQuestion(ctx, userID, professorID, submissionDTO.Text)
	case "answer":
		if submissionDTO.QuestionID == nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		result, err = s.qaSvc.SubmitAnswer(ctx, userID, professorID, *submissionDTO.QuestionID, submissionDTO.Text)
	default:
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
