package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	"jobboard_backend/internal/config"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	jobsusecase "jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/db"
	infraredis "jobboard_backend/internal/platform/redis"
	"jobboard_backend/internal/platform/token"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	// 署名鍵なしでは発行済みトークンを一切検証できないため、起動を中断する
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set. Set a strong secret before starting the server.")
	}

	// db
	gormDB := db.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	jobRepo := di.NewJobRepository(rdb, gormDB)

	// Token service
	generator := token.NewGenerator(cfg.JWTSecret, token.DefaultLifetime)
	verifier := token.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	jobsUC := jobsusecase.NewJobsUsecase(jobRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	jobsH := jobhandler.NewJobHandler(jobsUC)

	// ルータ生成
	r := router.NewRouter(authH, jobsH, token.AuthRequired(verifier, userRepo), cfg.CORSAllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
