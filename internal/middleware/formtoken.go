package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/model"
)

type contextKey string

const formStateKey contextKey = "formState"

// FormToken returns middleware that validates the Bearer form token and
// stores the decoded form state in the request context.
func FormToken(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing form token")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			state, err := crypto.ValidateFormToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), formStateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FormStateFromContext extracts the decoded form state from the request context.
func FormStateFromContext(ctx context.Context) (model.FormState, bool) {
	state, ok := ctx.Value(formStateKey).(model.FormState)
	return state, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
