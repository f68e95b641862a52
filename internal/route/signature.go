package route

import (
	"github.com/comite-bacias/presenca/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Signatures(r *gin.RouterGroup, sc *controller.SignatureController) {
	v1 := r.Group("/v1/signatures")
	{
		v1.POST("", sc.Submit)
		v1.GET("/validate/:code", sc.Validate)
	}
}
