package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	platformhandler "jobboard_backend/internal/platform/http/handler"
)

func NewRouter(authHandler *authhandler.AuthHandler, jobHandler *jobhandler.JobHandler,
	authRequired gin.HandlerFunc, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// ブラウザSPA向けのCORS設定（ルート登録前に適用する必要がある）
	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 認証不要
	users := r.Group("/api/users")
	// 新規ユーザー登録
	users.POST("/signup", authHandler.Signup)
	// ログイン（トークン発行）
	users.POST("/login", authHandler.Login)

	// 認証必須のルート
	// authRequired ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	usersAuthed := users.Group("")
	usersAuthed.Use(authRequired)
	{
		usersAuthed.GET("/me", authHandler.Me)
	}

	// 求人の読み取りは公開、書き込みは認証必須
	jobs := r.Group("/api/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.GetByID)

	jobsAuthed := jobs.Group("")
	jobsAuthed.Use(authRequired)
	{
		jobsAuthed.POST("", jobHandler.Create)
		jobsAuthed.PUT("/:id", jobHandler.Update)
		jobsAuthed.DELETE("/:id", jobHandler.Delete)
	}

	return r
}
