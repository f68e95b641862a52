package controller

import (
	"net/http"

	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	*baseController
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Digite a senha.", util.GenerateErrorMessages(err), nil)
		return
	}

	token, err := ac.app.AdminGate.Login(body.Password)
	if err != nil {
		ac.app.Metrics.AdminLogins.WithLabelValues("rejected").Inc()
		ac.respondError(ctx, err, defaultErrorMessages)
		return
	}

	ac.app.Metrics.AdminLogins.WithLabelValues("accepted").Inc()
	util.ResponseSuccessWithMessage(ctx, "Acesso autorizado!", gin.H{
		"accessToken": token,
	})
}
