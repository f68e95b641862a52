package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/constant"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminGate checks the shared admin password. It only hides the admin views from casual
// visitors: everyone who knows the password is the same admin.
type AdminGate struct {
	password     string
	passwordHash string
	jwtService   JWTInterface
	logger       *zap.SugaredLogger
}

func NewAdminGate(cfg config.AuthConfig, jwtService JWTInterface, logger *zap.SugaredLogger) *AdminGate {
	return &AdminGate{
		password:     cfg.ADMIN_PASSWORD,
		passwordHash: cfg.ADMIN_PASSWORD_HASH,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Authenticate reports whether password matches. A configured bcrypt hash takes precedence.
func (g AdminGate) Authenticate(password string) bool {
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	if g.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(password)) == 1
}

// Login returns an access token for the admin views, or attendance.ErrAuth.
func (g AdminGate) Login(password string) (string, error) {
	if !g.Authenticate(password) {
		g.logger.Debug("Admin login rejected")
		return "", attendance.ErrAuth
	}

	token, err := g.jwtService.GenerateAccessToken(JWTPayload{Role: constant.ROLE_ADMIN})
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return *token, nil
}

// HashPassword is used by the CLI to produce ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
