package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"anonchat/backend/internal/api/handler"
	"anonchat/backend/internal/chathub"
	"anonchat/backend/internal/config"
	"anonchat/backend/internal/models"
	"anonchat/backend/internal/quota"
	"anonchat/backend/internal/report"
	"anonchat/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Chat{},
		&models.Message{},
		&models.Topic{},
		&models.RequestTopic{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting AnonChat Backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	gate := quota.NewRedisGate(rdb)
	reports := report.NewService(s)

	hub := chathub.NewGateway(s, gate)
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(hub, s, gate, reports, cfg.JWTSecret, cfg.TokenTTL)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API server is running (%s)", time.Now().Format(time.RFC3339))
	})

	r.POST("/auth", h.Login)
	r.GET("/topics", h.GetTopics)

	authorized := r.Group("/", h.AuthMiddleware())
	authorized.GET("/user", h.GetUserProfile)
	authorized.GET("/reports", h.GetReports)
	authorized.GET("/reports/:id", h.GetReportByID)
	authorized.POST("/reports", h.CreateReport)
	authorized.GET("/request-topics", h.GetRequestTopics)
	authorized.POST("/request-topics", h.CreateRequestTopic)
	authorized.GET("/request-topics/:id", h.GetRequestTopic)
	authorized.PUT("/request-topics/:id", h.UpdateRequestTopicStatus)
	authorized.GET("/quota/:username", h.GetUserQuota)
	authorized.POST("/quota/:username", h.UpdateUserQuota)

	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
