package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/database"
	"jobboard-api/internal/server"
	"jobboard-api/internal/storage/postgres"

	"github.com/go-playground/validator"
)

// @title           Job Board API
// @version         1.0
// @description     REST API for a job board: recruiters post jobs, job seekers apply and track their applications.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	// Redis only backs the auth rate limiter, so a failed connection is a
	// warning, not a fatal error.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("WARN: Failed to connect to Redis: %v. Continuing without rate limiting.", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		UserRepo:        postgres.NewUserRepo(dbPool),
		AdminRepo:       postgres.NewAdminRepo(dbPool),
		JobRepo:         postgres.NewJobRepo(dbPool),
		ApplicationRepo: postgres.NewApplicationRepo(dbPool),
		CompanyRepo:     postgres.NewCompanyRepo(dbPool),
		SkillRepo:       postgres.NewSkillRepo(dbPool),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
