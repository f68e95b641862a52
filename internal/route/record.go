package route

import (
	"github.com/comite-bacias/presenca/internal/controller"
	"github.com/comite-bacias/presenca/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Records(r *gin.RouterGroup, rc *controller.RecordController, ec *controller.ExportController, middleware *middleware.Middleware) {
	public := r.Group("/v1/records")
	{
		public.GET("/open", rc.ListOpen)
		public.GET("/:recordId/public", rc.GetPublic)
	}

	v1 := r.Group("/v1/records")
	v1.Use(middleware.AdminAuthMiddleware)
	{
		v1.GET("", rc.List)
		v1.POST("", rc.Create)
		v1.PATCH("/:recordId/status", rc.ToggleStatus)
		v1.GET("/:recordId/link", rc.GetLink)
		v1.GET("/:recordId/qrcode", rc.GetQRCode)
		v1.GET("/:recordId/signatures", rc.ListSignatures)
		v1.GET("/:recordId/exports/pdf", ec.PDF)
	}
}
