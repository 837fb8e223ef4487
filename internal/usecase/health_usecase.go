package usecase

import (
	"context"

	"go-profilepage-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"db":     "ok",
		"redis":  "ok",
	}
	if u.db == nil || u.db.Ping(ctx) != nil {
		status["status"] = "degraded"
		status["db"] = "unavailable"
	}
	if redis.HealthCheck(ctx) != nil {
		status["redis"] = "unavailable"
	}
	return status
}
