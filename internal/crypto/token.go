package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/passform/passform-go/internal/model"
)

const (
	tokenIssuer   = "passform"
	tokenAudience = "passform-form"
)

var ErrInvalidToken = errors.New("invalid or expired form token")

// FormClaims carries the state of one password form between requests.
type FormClaims struct {
	jwt.RegisteredClaims
	Form model.FormState `json:"form"`
}

// GenerateFormToken signs the given form state.
func GenerateFormToken(state model.FormState, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := FormClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Form: state,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateFormToken parses and verifies a form token and returns the form state.
func ValidateFormToken(tokenString, secret string) (model.FormState, error) {
	token, err := jwt.ParseWithClaims(tokenString, &FormClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return model.FormState{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*FormClaims)
	if !ok || !token.Valid {
		return model.FormState{}, ErrInvalidToken
	}

	return claims.Form, nil
}
