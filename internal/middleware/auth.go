package middleware

import (
	"errors"
	"net/http"

	"github.com/comite-bacias/presenca/internal/constant"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware lets through requests carrying an admin access token.
func (m Middleware) AdminAuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Acesso restrito à administração.", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Sessão inválida ou expirada.", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS || claim.Admin.Role != constant.ROLE_ADMIN {
		m.app.Logger.Debugf("Invalid token type %s or role %s", claim.Type, claim.Admin.Role)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Sessão inválida ou expirada.", util.GenerateErrorMessages(errors.New("invalid access token"), "unauthorized"), nil)
		return
	}

	ctx.Set("admin", claim.Admin)
	ctx.Next()
}
