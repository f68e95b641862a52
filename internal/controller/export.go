package controller

import (
	"strconv"

	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
)

type ExportController struct {
	*baseController
}

var pdfErrorMessages = func() errorMessages {
	m := defaultErrorMessages
	m.empty = "Nenhuma assinatura para gerar PDF."
	return m
}()

// CSV exports one record with ?recordId=, otherwise every signature.
func (ec ExportController) CSV(ctx *gin.Context) {
	file, err := ec.app.Exporter.CSV(ctx.Query("recordId"))
	if err != nil {
		ec.respondError(ctx, err, defaultErrorMessages)
		return
	}

	ec.app.Metrics.Exports.WithLabelValues("csv").Inc()
	util.ResponseFile(ctx, file.Filename, file.ContentType, file.Content)
}

func (ec ExportController) PDF(ctx *gin.Context) {
	recordID := ctx.Param("recordId")

	file, err := ec.app.Exporter.PDF(recordID)
	if err != nil {
		ec.respondError(ctx, err, pdfErrorMessages)
		return
	}

	if ec.app.Archive != nil {
		url, err := ec.app.Archive.StoreExport(ctx.Request.Context(), recordID, file.Filename, file.Content)
		if err != nil {
			ec.app.Logger.Errorf("Failed to archive PDF export of record %s: %v", recordID, err)
		} else {
			ctx.Header("X-Archive-Url", url)
		}
	}

	ec.app.Metrics.Exports.WithLabelValues("pdf").Inc()
	ctx.Header("X-Page-Count", strconv.Itoa(file.PageCount))
	util.ResponseFile(ctx, file.Filename, file.ContentType, file.Content)
}
