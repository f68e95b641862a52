package route

import (
	appcontext "github.com/comite-bacias/presenca/internal/app_context"
	"github.com/comite-bacias/presenca/internal/controller"
	"github.com/comite-bacias/presenca/internal/middleware"
	"github.com/comite-bacias/presenca/internal/util"
	ratelimiter "github.com/comite-bacias/presenca/internal/rate_limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middlewares, controllers and every route group of the api.
func NewRouter(app *appcontext.Application, rateLimiter *ratelimiter.FixedWindowRateLimiter) *gin.Engine {
	_middleware := middleware.NewMiddleware(app, rateLimiter)

	if err := util.RegisterBindingValidations(); err != nil {
		app.Logger.Errorf("Failed to register custom validations: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Archive-Url", "X-Page-Count"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.MetricsMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(app)

	r.GET("/", _controller.Index.Index)
	r.GET("/healthz", _controller.Index.Health)
	r.GET("/metrics", _controller.Index.Metrics)

	rApi := r.Group("/api")

	V1_Auth(rApi, _controller.Auth)
	V1_Records(rApi, _controller.Record, _controller.Export, _middleware)
	V1_Signatures(rApi, _controller.Signature)
	V1_Exports(rApi, _controller.Export, _middleware)

	return r
}
