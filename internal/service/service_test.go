package service_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"Lectern/internal/api/config"
	"Lectern/internal/model"
	"Lectern/internal/repository"
	"Lectern/internal/service"
)

type testEnv struct {
	db *gorm.DB

	userRepo       repository.UserRepo
	roleRepo       repository.RoleRepo
	professorRepo  repository.ProfessorRepo
	reviewRepo     repository.ReviewRepo
	qaRepo         repository.QARepo
	evaluationRepo repository.EvaluationRepo
	dailyLimitRepo repository.DailyLimitRepo

	userSvc       service.UserService
	professorSvc  service.ProfessorService
	reviewSvc     service.ReviewService
	qaSvc         service.QAService
	voteSvc       service.VoteService
	evaluationSvc service.EvaluationService
	quotaSvc      service.QuotaService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database connection: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql db: %v", err)
	}
	// 内存库必须单连接，否则每个连接各自一份空库
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.UserRole{},
		&model.Professor{},
		&model.Review{},
		&model.ReviewVote{},
		&model.Question{},
		&model.Answer{},
		&model.AnswerVote{},
		&model.ProfessorEvaluation{},
		&model.UserDailyLimit{},
	)
	if err != nil {
		t.Fatalf("could not migrate schema: %v", err)
	}

	for _, name := range []string{"USER", "MODERATOR", "ADMIN"} {
		if err = db.Create(&model.Role{Name: name}).Error; err != nil {
			t.Fatalf("could not seed role %s: %v", name, err)
		}
	}

	config.Cfg = &config.Config{
		Quota: config.QuotaConfig{
			DailyReviewLimit:   3,
			DailyQuestionLimit: 3,
		},
	}

	env := &testEnv{db: db}
	env.userRepo = repository.NewUserRepo(db)
	env.roleRepo = repository.NewRoleRepo(db)
	env.professorRepo = repository.NewProfessorRepo(db)
	env.reviewRepo = repository.NewReviewRepo(db)
	env.qaRepo = repository.NewQARepo(db)
	env.evaluationRepo = repository.NewEvaluationRepo(db)
	env.dailyLimitRepo = repository.NewDailyLimitRepo(db)

	env.userSvc = service.NewUserService(env.userRepo, env.roleRepo)
	env.reviewSvc = service.NewReviewService(env.reviewRepo, env.professorRepo)
	env.qaSvc = service.NewQAService(env.qaRepo, env.professorRepo)
	env.voteSvc = service.NewVoteService(env.reviewRepo, env.qaRepo)
	env.evaluationSvc = service.NewEvaluationService(env.evaluationRepo, env.professorRepo)
	env.quotaSvc = service.NewQuotaService(env.dailyLimitRepo, env.reviewRepo, env.qaRepo)
	env.professorSvc = service.NewProfessorService(env.professorRepo, env.reviewRepo, env.reviewSvc, env.qaSvc, env.evaluationSvc)

	return env
}

func (env *testEnv) createUser(t *testing.T, username string) uint64 {
	t.Helper()
	password := "secret-password"
	user := &model.User{Username: username, Password: &password}
	role, err := env.roleRepo.GetByName(context.Background(), "USER")
	if err != nil || role == nil {
		t.Fatalf("could not load default role: %v", err)
	}
	if err = env.userRepo.CreateUser(context.Background(), user, role.ID); err != nil {
		t.Fatalf("could not create user %s: %v", username, err)
	}
	return user.ID
}

func (env *testEnv) createProfessor(t *testing.T, name, department string) uint64 {
	t.Helper()
	professor := &model.Professor{Name: name, Department: department}
	if err := env.professorRepo.Create(context.Background(), professor); err != nil {
		t.Fatalf("could not create professor %s: %v", name, err)
	}
	return professor.ID
}

func (env *testEnv) createApprovedQuestion(t *testing.T, userID, professorID uint64, text string) uint64 {
	t.Helper()
	ctx := context.Background()
	result, err := env.qaSvc.SubmitQuestion(ctx, userID, professorID, text)
	if err != nil {
		t.Fatalf("question submit failed: %v", err)
	}
	if err = env.qaSvc.ApproveQuestion(ctx, result.ContentID); err != nil {
		t.Fatalf("question approve failed: %v", err)
	}
	return result.ContentID
}
