package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/raghavposhaak/poshaak_backend/cmd/docs"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/middleware"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	auth := r.Group("/api/auth")

	// Public auth routes
	registerAuthRoutes(auth, cfg, services.Auth)
	registerGoogleOAuthRoutes(auth, cfg, services)

	// Authenticated account routes under the same prefix
	me := r.Group("/api/auth", middleware.SessionAuthMiddleware(services.Session, cfg.SessionCookieName))
	registerMeRoutes(me, cfg, services.Auth)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
