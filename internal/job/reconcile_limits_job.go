package job

import (
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/logger"
	"Lectern/internal/pkg/redis"
	"Lectern/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ReconcileLimitsJob 每日用内容表重算配额计数，修掉级联删除等路径留下的偏差
type ReconcileLimitsJob struct {
	quotaSvc service.QuotaService
}

func NewReconcileLimitsJob(quotaSvc service.QuotaService) *ReconcileLimitsJob {
	return &ReconcileLimitsJob{
		quotaSvc: quotaSvc,
	}
}

func (s *ReconcileLimitsJob) Run() {
	traceID := "job-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例跑对账
	lockValue := traceID
	locked, err := redis.TryLock(ctx, consts.ReconcileLockKey, lockValue, 10*time.Minute, 0)
	if err != nil || !locked {
		log.WarnContext(ctx, "skip reconcile, lock not acquired", "err", err)
		return
	}
	defer redis.UnLock(ctx, consts.ReconcileLockKey, lockValue)

	log.InfoContext(ctx, "start quota reconcile job")
	result, err := s.quotaSvc.ReconcileAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "quota reconcile job failed", "err", err)
		return
	}
	log.InfoContext(ctx, "quota reconcile job finished",
		"checked", result.Checked, "corrected", result.Corrected)
}
