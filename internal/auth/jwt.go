package auth

import (
	"errors"
	"time"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/constant"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

type JWTInterface interface {
	GenerateAccessToken(payload JWTPayload) (*string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	secret := cfg.JWT_SECRET
	if secret == "" {
		// Sessions will not survive a restart
		logger.Warn("AUTH_JWT_SECRET is empty, using a random secret")
		generated, err := util.GenerateNChar(64)
		if err != nil {
			logger.Panic(err)
		}
		secret = generated
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &JWT{
		jwtSecret: secret,
		tokenTTL:  ttl,
		logger:    logger,
		now:       time.Now,
	}
}

type JWTPayload struct {
	Role string `json:"role"`
}

type JWTClaims struct {
	Admin JWTPayload `json:"admin"`
	Type  string     `json:"type"`
	IAT   int64      `json:"iat"`
	EXP   int64      `json:"exp"`
}

func (j JWT) GenerateAccessToken(payload JWTPayload) (*string, error) {
	j.logger.Debugf("Generate access token with payload: %v", payload)

	now := j.now()
	accessClaims := jwt.MapClaims{
		"admin": payload,
		"type":  constant.JWT_TYPE_ACCESS,
		"iat":   now.Unix(),
		"exp":   now.Add(j.tokenTTL).Unix(),
	}
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err := access.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &accessToken, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	admin, ok := claims["admin"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: admin field is missing or malformed")
	}
	role, _ := admin["role"].(string)
	tokenType, _ := claims["type"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return &JWTClaims{
		Admin: JWTPayload{
			Role: role,
		},
		Type: tokenType,
		IAT:  int64(iat),
		EXP:  int64(exp),
	}, nil
}
