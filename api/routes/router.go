package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travely/internal/agent"
	"travely/internal/auth"
	"travely/internal/bookings"
	"travely/internal/catalog"
	"travely/internal/discounts"
	"travely/internal/notifications"
	"travely/internal/shared/config"
	"travely/internal/shared/database"
	"travely/internal/users"
	"travely/pkg/cache"
	"travely/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.Producer
	log       *logger.Logger

	// services shared across route groups
	userRepo        users.Repository
	catalogService  catalog.Service
	discountService discounts.Service
	bookingService  bookings.Service
}

// NewRouter creates a new router instance. publisher may be nil when Kafka
// is disabled; booking confirmations are then simply not published.
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		publisher: publisher,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupDiscountRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAgentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "travely-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "travely-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config, r.log)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	r.userRepo = users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(r.userRepo, r.log)
	userController := users.NewController(userService)

	users.RegisterRoutes(rg, userController, r.config.JWT.Secret)
}

func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	r.catalogService = catalog.NewService(catalogRepo, r.log)
	if r.cache != nil {
		r.catalogService.SetCacheService(r.cache)
	}
	catalogController := catalog.NewController(r.catalogService)

	catalog.RegisterRoutes(rg, catalogController, r.config.JWT.Secret)
}

func (r *Router) setupDiscountRoutes(rg *gin.RouterGroup) {
	discountRepo := discounts.NewRepository(r.db.GetPostgreSQL())
	r.discountService = discounts.NewService(discountRepo, r.log)
	if r.cache != nil {
		r.discountService.SetCacheService(r.cache)
	}
	discountController := discounts.NewController(r.discountService)

	discounts.RegisterRoutes(rg, discountController, r.config.JWT.Secret)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())

	r.bookingService = bookings.NewService(
		bookingRepo,
		catalogRepo,
		r.userRepo,
		r.discountService,
		r.publisher,
		r.catalogService,
		r.log,
	)
	bookingController := bookings.NewController(r.bookingService)

	bookings.RegisterRoutes(rg, bookingController, r.config.JWT.Secret)
}

func (r *Router) setupAgentRoutes(rg *gin.RouterGroup) {
	agentService := agent.NewService(r.bookingService, r.log)
	agentController := agent.NewController(agentService)

	agent.RegisterRoutes(rg, agentController, r.config.JWT.Secret)
}
