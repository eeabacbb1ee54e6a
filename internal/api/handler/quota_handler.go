package handler

import (
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"

	"github.com/gin-gonic/gin"
)

type QuotaHandler struct {
	quotaSvc service.QuotaService
}

func NewQuotaHandler(quotaSvc service.QuotaService) *QuotaHandler {
	return &QuotaHandler{
		quotaSvc: quotaSvc,
	}
}

// DailyStats 当前用户今天的配额使用情况
func (s *QuotaHandler) DailyStats(c *gin.Context) {
	stats, err := s.quotaSvc.DailyStats(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// Reconcile 手动触发一次计数对账
func (s *QuotaHandler) Reconcile(c *gin.Context) {
	result, err := s.quotaSvc.ReconcileAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
