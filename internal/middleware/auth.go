package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	managerIDKey ctxKey = "manager_id"
)

// JWTAuth verifies the Bearer token issued by the identity provider and
// stashes the user and manager IDs in the request context. Expected
// claims: "sub" (user uuid) and "manager_id" (uuid of the manager whose
// offices gate this user's attendance).
func JWTAuth(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("jwt rejected", slog.Any("error", err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := claimUUID(claims, "sub")
			if err != nil {
				logger.Warn("jwt missing sub", slog.Any("error", err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			managerID, err := claimUUID(claims, "manager_id")
			if err != nil {
				logger.Warn("jwt missing manager_id", slog.Any("error", err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, managerIDKey, managerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimUUID(claims jwt.MapClaims, name string) (uuid.UUID, error) {
	raw, ok := claims[name].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("claim %q missing", name)
	}
	return uuid.Parse(raw)
}

// WithIdentity stashes an already-verified identity in the context, the
// same way JWTAuth does after token verification.
func WithIdentity(ctx context.Context, userID, managerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, managerIDKey, managerID)
}

func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

func ManagerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(managerIDKey).(uuid.UUID)
	return id, ok
}
