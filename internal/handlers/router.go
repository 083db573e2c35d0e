package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/config"
	"github.com/hirepath/hirepath/internal/metrics"
	"github.com/hirepath/hirepath/internal/middleware"
	"github.com/hirepath/hirepath/internal/services"
)

// NewRouter wires services, handlers and middleware into the route table.
// Register, login, health and metrics are the only routes outside the auth
// gate.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userService := services.NewUserService(db, cfg.JWTSecret, cfg.TokenTTL)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	userHandler := NewUserHandler(userService, cfg.Env)
	companyHandler := NewCompanyHandler(companyService)
	jobHandler := NewJobHandler(jobService)
	applicationHandler := NewApplicationHandler(applicationService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.CountRequests())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CorsOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", metrics.Handler())

	authenticated := middleware.RequireAuth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authenticated, userHandler.Logout)
			users.GET("/profile", authenticated, userHandler.GetProfile)
			users.PUT("/profile/update", authenticated, userHandler.UpdateProfile)
		}

		companies := api.Group("/companies", authenticated)
		{
			companies.POST("", companyHandler.Create)
			companies.GET("", companyHandler.ListOwn)
			companies.GET("/:id", companyHandler.Get)
			companies.PUT("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Delete)
		}

		jobs := api.Group("/jobs", authenticated)
		{
			jobs.POST("", jobHandler.Create)
			jobs.GET("", jobHandler.List)
			jobs.GET("/my-jobs", jobHandler.ListOwn)
			jobs.GET("/:id", jobHandler.Get)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}

		applications := api.Group("/applications", authenticated)
		{
			applications.POST("/apply/:id", applicationHandler.Apply)
			applications.GET("/my-applications", applicationHandler.ListOwn)
			applications.GET("/job/:id", applicationHandler.ListForJob)
			applications.PUT("/:id/status", applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.Delete)
		}
	}

	return r
}
