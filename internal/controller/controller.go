package controller

import (
	"errors"
	"net/http"

	appcontext "github.com/comite-bacias/presenca/internal/app_context"
	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index     *IndexController
	Auth      *AuthController
	Record    *RecordController
	Signature *SignatureController
	Export    *ExportController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:     &IndexController{baseController: bc},
		Auth:      &AuthController{baseController: bc},
		Record:    &RecordController{baseController: bc},
		Signature: &SignatureController{baseController: bc},
		Export:    &ExportController{baseController: bc},
	}
}

const (
	MsgPersistFailed = "Não foi possível salvar os dados."
	MsgRecordMissing = "ATA não encontrada."
)

// Status messages for the error kinds. A field-specific message wins over these.
type errorMessages struct {
	validation string
	notFound   string
	closed     string
	empty      string
	auth       string
}

var defaultErrorMessages = errorMessages{
	validation: "Por favor, preencha todos os campos.",
	notFound:   MsgRecordMissing,
	closed:     "Esta ATA está fechada para assinaturas.",
	empty:      "Nenhuma assinatura para exportar.",
	auth:       "Senha incorreta.",
}

var fieldMessages = map[string]string{
	"title":    "Digite o nome da ATA.",
	"recordId": "Selecione uma ATA para assinar.",
}

// respondError maps the domain error kinds onto status codes and the envelope.
func (b *baseController) respondError(ctx *gin.Context, err error, msgs errorMessages) {
	var fe *attendance.FieldError
	switch {
	case errors.As(err, &fe):
		message := msgs.validation
		if m, ok := fieldMessages[fe.Field]; ok {
			message = m
		}
		util.ResponseFailed(ctx, http.StatusBadRequest, message, []util.ApiError{{Field: fe.Field, Message: fe.Message}}, nil)
	case errors.Is(err, attendance.ErrValidation):
		util.ResponseFailed(ctx, http.StatusBadRequest, msgs.validation, util.GenerateErrorMessages(err), nil)
	case errors.Is(err, attendance.ErrAuth):
		util.ResponseFailed(ctx, http.StatusUnauthorized, msgs.auth, util.GenerateErrorMessages(err, "password"), nil)
	case errors.Is(err, attendance.ErrNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, msgs.notFound, util.GenerateErrorMessages(err), nil)
	case errors.Is(err, attendance.ErrClosedRecord):
		util.ResponseFailed(ctx, http.StatusConflict, msgs.closed, util.GenerateErrorMessages(err, "recordId"), nil)
	case errors.Is(err, attendance.ErrEmptyExport):
		util.ResponseFailed(ctx, http.StatusUnprocessableEntity, msgs.empty, util.GenerateErrorMessages(err), nil)
	default:
		b.app.Logger.Errorf("Unexpected error: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
	}
}

// persist writes the change and answers 500 when it fails. Returns false if the handler must stop.
func (b *baseController) persist(ctx *gin.Context, change attendance.Change) bool {
	if err := b.app.Store.Persist(ctx, change); err != nil {
		b.app.Logger.Errorf("Failed to persist %s: %v", change.Collection, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, MsgPersistFailed, util.GenerateErrorMessages(err), nil)
		return false
	}
	return true
}
