package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/WebCoreServices/customer-portal/internal/config"
	dbpkg "github.com/WebCoreServices/customer-portal/internal/db"
	"github.com/WebCoreServices/customer-portal/internal/logger"
	"github.com/WebCoreServices/customer-portal/internal/middleware"
	"github.com/WebCoreServices/customer-portal/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
