package handlers

import (
	portssvc "github.com/avelins/currency_exchange_app/internal/core/ports/services"
	"github.com/avelins/currency_exchange_app/internal/middleware"
	"github.com/avelins/currency_exchange_app/internal/utils/validation"
	"github.com/avelins/currency_exchange_app/pkg/config"

	"github.com/avelins/currency_exchange_app/cmd/docs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	registerCustomValidators()

	r.Use(cors.Default())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, services, limiterInstance)

	// Swagger routes (not exposed in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerConversionRoutes(v1, services.Conversion)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidators exposes the entity validation rules as binding
// tags so malformed payloads are rejected before the service layer runs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return validation.IsValidCurrencyCode(fl.Field().String())
	})
	_ = v.RegisterValidation("currency_name", func(fl validator.FieldLevel) bool {
		return validation.IsValidCurrencyName(fl.Field().String())
	})
	_ = v.RegisterValidation("currency_sign", func(fl validator.FieldLevel) bool {
		return validation.IsValidCurrencySign(fl.Field().String())
	})
}
