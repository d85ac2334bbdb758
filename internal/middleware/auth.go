package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aclo-store/checkout-service/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

const RoleAdmin = "admin"

type userIDKey struct{}
type roleKey struct{}

// Auth verifies the Bearer token and stores the subject and role claims
// in the request context.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				utils.WriteError(w, "missing authorization token", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}
			role, _ := claims["role"].(string)

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), sub, role)))
		})
	}
}

// AdminOnly rejects requests whose token does not carry the admin role.
// Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != RoleAdmin {
			utils.WriteError(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser attaches the authenticated user id and role to the context.
func WithUser(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, id)
	return context.WithValue(ctx, roleKey{}, role)
}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}
