package api

import "Lectern/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	ProfessorHandler  *handler.ProfessorHandler
	SubmissionHandler *handler.SubmissionHandler
	VoteHandler       *handler.VoteHandler
	EvaluationHandler *handler.EvaluationHandler
	QuotaHandler      *handler.QuotaHandler
	ModerationHandler *handler.ModerationHandler
	MediaHandler      *handler.MediaHandler
}
