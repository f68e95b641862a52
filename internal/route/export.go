package route

import (
	"github.com/comite-bacias/presenca/internal/controller"
	"github.com/comite-bacias/presenca/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Exports(r *gin.RouterGroup, ec *controller.ExportController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/exports")
	v1.Use(middleware.AdminAuthMiddleware)
	{
		v1.GET("/csv", ec.CSV)
	}
}
