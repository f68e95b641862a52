package controller

import (
	"net/http"
	"strconv"

	"github.com/comite-bacias/presenca/internal/model"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/comite-bacias/presenca/pkg/presenca"
	"github.com/gin-gonic/gin"
)

type RecordController struct {
	*baseController
}

const (
	QR_CODE_DEFAULT_SIZE = 256
	QR_CODE_MIN_SIZE     = 64
	QR_CODE_MAX_SIZE     = 1024
)

type recordResponse struct {
	model.Record
	CreatedAtDisplay string `json:"createdAtDisplay"`
	SignatureCount   int    `json:"signatureCount"`
}

func (rc RecordController) toResponse(r model.Record) recordResponse {
	return recordResponse{
		Record:           r,
		CreatedAtDisplay: r.CreatedAtDisplay(rc.app.Config.Location()),
		SignatureCount:   rc.app.Store.CountSignatures(r.ID),
	}
}

func (rc RecordController) toResponses(records []model.Record) []recordResponse {
	out := make([]recordResponse, len(records))
	for i, r := range records {
		out[i] = rc.toResponse(r)
	}
	return out
}

// ListOpen feeds the record selector of the signing view.
func (rc RecordController) ListOpen(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"records": rc.toResponses(rc.app.Store.OpenRecords()),
	})
}

// GetPublic resolves the record of a signing link. When it is open the client locks the form to it.
func (rc RecordController) GetPublic(ctx *gin.Context) {
	record, err := rc.app.Store.GetRecord(ctx.Param("recordId"))
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"record": rc.toResponse(record),
		"locked": record.IsOpen(),
	})
}

func (rc RecordController) List(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"records": rc.toResponses(rc.app.Store.ListRecords()),
	})
}

func (rc RecordController) Create(ctx *gin.Context) {
	type Request struct {
		Title string `json:"title" form:"title" binding:"cmax=200"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Digite o nome da ATA.", util.GenerateErrorMessages(err), nil)
		return
	}

	record, change, err := rc.app.Store.CreateRecord(body.Title)
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}
	if !rc.persist(ctx, change) {
		return
	}

	rc.app.Metrics.RecordsCreated.Inc()
	util.ResponseSuccessWithMessage(ctx, "ATA criada com sucesso!", gin.H{
		"record": rc.toResponse(record),
	})
}

func (rc RecordController) ToggleStatus(ctx *gin.Context) {
	record, change, err := rc.app.Store.ToggleRecordStatus(ctx.Param("recordId"))
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}
	if !rc.persist(ctx, change) {
		return
	}

	rc.app.Metrics.RecordStatusToggles.WithLabelValues(string(record.Status)).Inc()

	message := "ATA reaberta para assinaturas."
	if !record.IsOpen() {
		message = "ATA fechada para assinaturas."
	}
	util.ResponseSuccessWithMessage(ctx, message, gin.H{
		"record": rc.toResponse(record),
	})
}

func (rc RecordController) GetLink(ctx *gin.Context) {
	record, err := rc.app.Store.GetRecord(ctx.Param("recordId"))
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"link": util.GetRecordSigningLink(rc.app.Config.AppURL, record.ID),
	})
}

// GetQRCode renders the signing link as png (default) or svg.
func (rc RecordController) GetQRCode(ctx *gin.Context) {
	record, err := rc.app.Store.GetRecord(ctx.Param("recordId"))
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}
	link := util.GetRecordSigningLink(rc.app.Config.AppURL, record.ID)

	switch ctx.DefaultQuery("format", "png") {
	case "svg":
		svg, err := presenca.GenerateQRCodeSVG(link)
		if err != nil {
			rc.respondError(ctx, err, defaultErrorMessages)
			return
		}
		ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	case "png":
		size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(QR_CODE_DEFAULT_SIZE)))
		if err != nil || size < QR_CODE_MIN_SIZE || size > QR_CODE_MAX_SIZE {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Tamanho inválido.", []util.ApiError{{Field: "size", Message: "size must be between 64 and 1024"}}, nil)
			return
		}

		png, err := presenca.GenerateQRCodePNG(link, size)
		if err != nil {
			rc.respondError(ctx, err, defaultErrorMessages)
			return
		}
		ctx.Data(http.StatusOK, "image/png", png)
	default:
		util.ResponseFailed(ctx, http.StatusBadRequest, "Formato inválido.", []util.ApiError{{Field: "format", Message: "format must be png or svg"}}, nil)
	}
}

func (rc RecordController) ListSignatures(ctx *gin.Context) {
	record, err := rc.app.Store.GetRecord(ctx.Param("recordId"))
	if err != nil {
		rc.respondError(ctx, err, defaultErrorMessages)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"record":     rc.toResponse(record),
		"signatures": toSignatureResponses(rc.app.Store.ListSignatures(record.ID), rc.app.Config.Location()),
	})
}
