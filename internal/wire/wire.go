package wire

import (
	"Lectern/internal/api"
	"Lectern/internal/api/handler"
	"Lectern/internal/job"
	"Lectern/internal/pkg/cron"
	"Lectern/internal/repository"
	"Lectern/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	professorRepo := repository.NewProfessorRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	qaRepo := repository.NewQARepo(db)
	evaluationRepo := repository.NewEvaluationRepo(db)
	dailyLimitRepo := repository.NewDailyLimitRepo(db)

	userService := service.NewUserService(userRepo, roleRepo)
	reviewService := service.NewReviewService(reviewRepo, professorRepo)
	qaService := service.NewQAService(qaRepo, professorRepo)
	voteService := service.NewVoteService(reviewRepo, qaRepo)
	evaluationService := service.NewEvaluationService(evaluationRepo, professorRepo)
	quotaService := service.NewQuotaService(dailyLimitRepo, reviewRepo, qaRepo)
	professorService := service.NewProfessorService(professorRepo, reviewRepo, reviewService, qaService, evaluationService)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		ProfessorHandler:  handler.NewProfessorHandler(professorService),
		SubmissionHandler: handler.NewSubmissionHandler(reviewService, qaService),
		VoteHandler:       handler.NewVoteHandler(voteService),
		EvaluationHandler: handler.NewEvaluationHandler(evaluationService),
		QuotaHandler:      handler.NewQuotaHandler(quotaService),
		ModerationHandler: handler.NewModerationHandler(reviewService, qaService),
		MediaHandler:      handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	reconcileJob := job.NewReconcileLimitsJob(quotaService)
	cronManager := cron.NewCronManager(reconcileJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronManager,
	}, nil
}
