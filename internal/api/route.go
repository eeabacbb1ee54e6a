package api

import (
	"Lectern/internal/api/middleware"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		professorGroup := apiGroup.Group("/professors")
		{
			// 列表与搜索匿名可看，带 token 时仍解析出用户
			professorGroup.GET("", middleware.AuthOptionalMiddleware(), group.ProfessorHandler.List)
			professorGroup.GET("/search", middleware.AuthOptionalMiddleware(), group.ProfessorHandler.Search)

			authGroup := professorGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				// 详情页要求登录，与提交入口保持一致
				authGroup.GET("/:professor_id", group.ProfessorHandler.Detail)
				authGroup.POST("/:professor_id/submissions", group.SubmissionHandler.Submit)
				authGroup.POST("/:professor_id/evaluation", group.EvaluationHandler.Submit)
				authGroup.GET("/:professor_id/evaluation", group.EvaluationHandler.Get)
			}
		}

		voteGroup := apiGroup.Group("")
		voteGroup.Use(middleware.AuthMiddleware())
		{
			voteGroup.POST("/reviews/:review_id/vote", group.VoteHandler.VoteReview)
			voteGroup.POST("/answers/:answer_id/vote", group.VoteHandler.VoteAnswer)
		}

		statsGroup := apiGroup.Group("/stats")
		statsGroup.Use(middleware.AuthMiddleware())
		{
			statsGroup.GET("/daily", group.QuotaHandler.DailyStats)
		}

		// 需要登录 & 拥有审核角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware())
		adminGroup.Use(middleware.CheckRoles(consts.RoleModerator, consts.RoleAdmin))
		{
			adminGroup.POST("/professors", group.ProfessorHandler.Create)
			adminGroup.PUT("/professors/:professor_id", group.ProfessorHandler.Update)
			adminGroup.DELETE("/professors/:professor_id", group.ProfessorHandler.Delete)

			adminGroup.GET("/reviews/pending", group.ModerationHandler.PendingReviews)
			adminGroup.PUT("/reviews/:review_id/approve", group.ModerationHandler.ApproveReview)
			adminGroup.PUT("/reviews/:review_id/reject", group.ModerationHandler.RejectReview)
			adminGroup.DELETE("/reviews/:review_id", group.ModerationHandler.DeleteReview)

			adminGroup.GET("/questions/pending", group.ModerationHandler.PendingQuestions)
			adminGroup.PUT("/questions/:question_id/approve", group.ModerationHandler.ApproveQuestion)
			adminGroup.PUT("/questions/:question_id/reject", group.ModerationHandler.RejectQuestion)
			adminGroup.DELETE("/questions/:question_id", group.ModerationHandler.DeleteQuestion)

			adminGroup.GET("/answers/pending", group.ModerationHandler.PendingAnswers)
			adminGroup.PUT("/answers/:answer_id/approve", group.ModerationHandler.ApproveAnswer)
			adminGroup.PUT("/answers/:answer_id/reject", group.ModerationHandler.RejectAnswer)
			adminGroup.DELETE("/answers/:answer_id", group.ModerationHandler.DeleteAnswer)

			adminGroup.POST("/quota/reconcile", group.QuotaHandler.Reconcile)
			adminGroup.POST("/media/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
