package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/passform/passform-go/internal/model"
)

func TestFormTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	state := model.FormState{
		Length:    "8",
		Uppercase: true,
		Symbols:   true,
		Password:  "AB#$CD!@",
		Generated: true,
	}

	token, err := GenerateFormToken(state, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateFormToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateFormToken() returned empty string")
	}

	got, err := ValidateFormToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateFormToken() unexpected error: %v", err)
	}
	if got != state {
		t.Errorf("ValidateFormToken() = %+v, want %+v", got, state)
	}
}

func TestValidateFormTokenInvalid(t *testing.T) {
	_, err := ValidateFormToken("not-a-valid-token", "test-secret")
	if err != ErrInvalidToken {
		t.Errorf("ValidateFormToken() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestValidateFormTokenWrongSecret(t *testing.T) {
	token, err := GenerateFormToken(model.FormState{}, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateFormToken() unexpected error: %v", err)
	}

	if _, err := ValidateFormToken(token, "wrong-secret"); err == nil {
		t.Error("ValidateFormToken() expected error for wrong secret")
	}
}

func TestValidateFormTokenExpired(t *testing.T) {
	token, err := GenerateFormToken(model.FormState{}, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateFormToken() unexpected error: %v", err)
	}

	if _, err := ValidateFormToken(token, "test-secret"); err == nil {
		t.Error("ValidateFormToken() expected error for expired token")
	}
}

func TestValidateFormTokenWrongAudience(t *testing.T) {
	secret := "test-secret"

	claims := FormClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := ValidateFormToken(tokenString, secret); err == nil {
		t.Error("ValidateFormToken() expected error for wrong audience")
	}
}
