package handlers

import (
	"github.com/SscSPs/travel_desk_backend/cmd/docs"
	portssvc "github.com/SscSPs/travel_desk_backend/internal/core/ports/services"
	"github.com/SscSPs/travel_desk_backend/internal/middleware"
	"github.com/SscSPs/travel_desk_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. apiMiddleware runs on the
// /api/v1 group after authentication, so it can key on the actor.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health HealthChecker,
	apiMiddleware ...gin.HandlerFunc,
) {
	registerHealthRoutes(r, health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, apiMiddleware)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the residence routes.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware []gin.HandlerFunc,
) {
	chain := []gin.HandlerFunc{
		middleware.ServiceKeyAuth(cfg.ServiceAPIKeys),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	}
	v1 := r.Group("/api/v1", append(chain, apiMiddleware...)...)

	RegisterResidenceRoutes(v1, services.Residence)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
