package routes

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/WebCoreServices/customer-portal/internal/audit"
	"github.com/WebCoreServices/customer-portal/internal/auth"
	"github.com/WebCoreServices/customer-portal/internal/config"
	"github.com/WebCoreServices/customer-portal/internal/handlers"
	"github.com/WebCoreServices/customer-portal/internal/middleware"
	"github.com/WebCoreServices/customer-portal/internal/repository"
	"github.com/WebCoreServices/customer-portal/internal/web"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	policy := auth.DefaultPolicy()
	policy.MinLength = cfg.PasswordMinLength
	policy.MaxLoginAttempts = cfg.MaxLoginAttempts

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, policy, cfg.SecretKey, auditDispatcher, log)
	customerHandler := handlers.NewCustomerHandler(customerRepo, auditDispatcher, log)
	webHandler := handlers.NewWebHandler()

	// ======================================================
	// WEB (HTML + STATIC)
	// ======================================================
	r.SetHTMLTemplate(template.Must(
		template.ParseFS(web.Templates, "templates/*.html"),
	))

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatal("failed to mount static assets", zap.Error(err))
	}
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/customers", webHandler.CustomersPage)

	// ======================================================
	// API (JSON)
	// ======================================================
	authLimit := middleware.RateLimit(rdb, 20, time.Minute)

	r.POST("/register", authLimit, authHandler.Register)
	r.POST("/login", authLimit, authHandler.Login)

	r.POST("/customers/add", customerHandler.Add)
	r.GET("/customers/get_all", customerHandler.GetAll)
}
