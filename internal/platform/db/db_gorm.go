package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"jobboard_backend/internal/config"
	authentity "jobboard_backend/internal/feature/auth/domain/entity"
	jobsentity "jobboard_backend/internal/feature/jobs/domain/entity"
)

// buildDSN assembles the MySQL DSN. clientFoundRows=true makes the driver
// report matched rows instead of changed rows; the ownership-conditional
// update relies on RowsAffected to distinguish "no such job for this owner"
// from "owner re-submitted identical fields".
func buildDSN(cfg *config.Config) string {
	if cfg.InstanceConnectionName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
			cfg.DBUser, cfg.DBPass, cfg.InstanceConnectionName, cfg.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := buildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Job）
		if err := db.AutoMigrate(
			&authentity.User{},
			&jobsentity.Job{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
