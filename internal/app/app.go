package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/storage"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	UserRepo        storage.UserRepository
	AdminRepo       storage.AdminRepository
	JobRepo         storage.JobRepository
	ApplicationRepo storage.ApplicationRepository
	CompanyRepo     storage.CompanyRepository
	SkillRepo       storage.SkillRepository
}
