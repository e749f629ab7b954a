package v1

import (
	"github.com/gin-gonic/gin"

	"protoparts/internal/infrastructure/http/v1/handlers"
	"protoparts/internal/infrastructure/http/v1/middleware"
	"protoparts/internal/infrastructure/metrics"
	"protoparts/pkg/logger"
)

// Services are the domain services the API is served from.
type Services struct {
	Users              handlers.UserService
	PrototypeSets      handlers.PrototypeSetService
	Prototypes         handlers.PrototypeService
	PrototypesPackages handlers.PrototypesPackageService
}

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Database is checked by the readiness probe
	Database handlers.Database

	AppName    string
	AppVersion string

	// TrustedProxies are passed to gin; nil trusts none
	TrustedProxies []string

	Services Services
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	// Global middleware (order matters!). Recovery must run inside ErrorHandler.
	router.Use(middleware.Trace())
	router.Use(metrics.Middleware())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	router.GET("/metrics", metrics.Handler())

	if cfg.Database != nil {
		healthHandler := handlers.NewHealthHandler(cfg.Database, cfg.AppName, cfg.AppVersion)
		health := router.Group("/health")
		{
			health.GET("/live", healthHandler.Live)
			health.GET("/ready", healthHandler.Ready)
			health.GET("/info", healthHandler.Info)
		}
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTValidator))

	base := handlers.NewBaseHandler()
	registerUserRoutes(api, base, cfg.Services)
	registerPrototypeRoutes(api, base, cfg.Services)
	registerPartCodeRoutes(api, base)

	return router, nil
}

func registerUserRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	h := handlers.NewUserHandler(base, s.Users)
	read := middleware.RequirePermission("user:read")

	users := rg.Group("/users")
	users.GET("", read, h.List)
	users.GET("/me", h.Me)
	users.GET("/:id", read, h.Get)
}

func registerPrototypeRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, s Services) {
	sets := handlers.NewPrototypeSetHandler(base, s.PrototypeSets, s.Prototypes)
	setGroup := rg.Group("/prototype-sets")
	RegisterEntityRoutes(setGroup, sets, "prototype_set")
	setGroup.GET("/:id/prototypes",
		middleware.RequirePermission("prototype_set:read", "prototype:read"),
		sets.ListPrototypes)

	RegisterEntityRoutes(rg.Group("/prototypes"), handlers.NewPrototypeHandler(base, s.Prototypes), "prototype")
	RegisterEntityRoutes(rg.Group("/prototypes-packages"),
		handlers.NewPrototypesPackageHandler(base, s.PrototypesPackages), "prototypes_package")
}

func registerPartCodeRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler) {
	h := handlers.NewPartCodeHandler(base)

	codes := rg.Group("/part-codes")
	codes.GET("/parse", h.Parse)
	codes.POST("/input", h.Input)
	codes.POST("/navigate", h.Navigate)
}
