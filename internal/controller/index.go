package controller

import (
	"net/http"

	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name":         util.GetAppName(),
		"organization": ic.app.Config.OrganizationName,
	})
}

func (ic IndexController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": len(ic.app.Store.ListRecords()),
	})
}

func (ic IndexController) Metrics(ctx *gin.Context) {
	promhttp.HandlerFor(ic.app.Metrics.Registry, promhttp.HandlerOpts{}).ServeHTTP(ctx.Writer, ctx.Request)
}
