package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the identity provider sharing the
// HMAC secret. This service never issues tokens itself.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ValidateToken(tokenString string) (subject string, err error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ValidateToken decodes and verifies a raw token and returns its subject.
func (j *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	sub := token.Subject()
	if sub == "" {
		return "", jwt.ErrInvalidJWT()
	}
	return sub, nil
}
