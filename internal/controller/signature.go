package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/mailer"
	"github.com/comite-bacias/presenca/internal/model"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
)

type SignatureController struct {
	*baseController
}

type signatureResponse struct {
	model.Signature
	SignedAtDisplay string `json:"signedAtDisplay"`
}

func toSignatureResponses(signatures []model.Signature, loc *time.Location) []signatureResponse {
	out := make([]signatureResponse, len(signatures))
	for i, s := range signatures {
		out[i] = signatureResponse{Signature: s, SignedAtDisplay: s.SignedAtDisplay(loc)}
	}
	return out
}

// Only what the validation view shows. Email stays private.
type validationResponse struct {
	SignerName     string `json:"signerName"`
	TaxID          string `json:"taxId"`
	Organization   string `json:"organization"`
	RecordTitle    string `json:"recordTitle"`
	SignedAt       string `json:"signedAt"`
	ValidationCode string `json:"validationCode"`
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, attendance.ErrValidation):
		return "validation"
	case errors.Is(err, attendance.ErrNotFound):
		return "not_found"
	case errors.Is(err, attendance.ErrClosedRecord):
		return "closed"
	default:
		return "error"
	}
}

func (sc SignatureController) Submit(ctx *gin.Context) {
	type Request struct {
		RecordID string `json:"recordId" form:"recordId"`
		model.SignatureFields
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, defaultErrorMessages.validation, util.GenerateErrorMessages(err), nil)
		return
	}

	sig, change, err := sc.app.Store.SubmitSignature(body.RecordID, body.SignatureFields)
	if err != nil {
		sc.app.Metrics.SignatureRejections.WithLabelValues(rejectionReason(err)).Inc()
		sc.respondError(ctx, err, defaultErrorMessages)
		return
	}
	if !sc.persist(ctx, change) {
		return
	}

	sc.app.Metrics.SignaturesSubmitted.Inc()
	go sc.sendReceipt(sig)

	util.ResponseSuccessWithMessage(ctx, "Assinatura registrada com sucesso!", gin.H{
		"signature": signatureResponse{Signature: sig, SignedAtDisplay: sig.SignedAtDisplay(sc.app.Config.Location())},
		// the client keeps the record selected for the next signer
		"recordId": sig.RecordID,
	})
}

// Receipts are best effort, a failure never undoes the signature.
func (sc SignatureController) sendReceipt(sig model.Signature) {
	receipt := mailer.SignatureReceipt{
		OrganizationName: sc.app.Config.OrganizationName,
		SignerName:       sig.SignerName,
		RecordTitle:      sig.RecordTitle,
		SignedAt:         sig.SignedAtDisplay(sc.app.Config.Location()),
		ValidationCode:   sig.ValidationCode,
		ValidationURL:    sc.app.Config.AppURL,
	}

	if _, err := sc.app.Mailer.Send(mailer.SIGNATURE_RECEIPT_TEMPLATE, sig.SignerName, sig.Email, receipt); err != nil {
		sc.app.Logger.Errorf("Failed to send receipt for signature %s: %v", sig.ID, err)
	}
}

func (sc SignatureController) Validate(ctx *gin.Context) {
	sig, ok := sc.app.Store.FindSignatureByCode(ctx.Param("code"))
	if !ok {
		sc.app.Metrics.ValidationLookups.WithLabelValues("not_found").Inc()
		util.ResponseFailed(ctx, http.StatusNotFound, "Código de validação não encontrado.", util.GenerateErrorMessages(attendance.ErrNotFound, "code"), nil)
		return
	}

	sc.app.Metrics.ValidationLookups.WithLabelValues("found").Inc()
	util.ResponseSuccessWithMessage(ctx, "Assinatura válida!", gin.H{
		"signature": validationResponse{
			SignerName:     sig.SignerName,
			TaxID:          sig.TaxID,
			Organization:   sig.Organization,
			RecordTitle:    sig.RecordTitle,
			SignedAt:       sig.SignedAtDisplay(sc.app.Config.Location()),
			ValidationCode: sig.ValidationCode,
		},
	})
}
