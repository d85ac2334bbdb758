package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aclo-store/checkout-service/internal/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantRole   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, testSecret, "user-1", ""),
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
		},
		{
			name:       "admin token carries role",
			header:     "Bearer " + signToken(t, testSecret, "admin-1", middleware.RoleAdmin),
			wantStatus: http.StatusOK,
			wantUser:   "admin-1",
			wantRole:   middleware.RoleAdmin,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, "other-secret", "user-1", ""),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without subject",
			header:     "Bearer " + signToken(t, testSecret, "", ""),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUser, gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = middleware.UserID(r.Context())
				gotRole = middleware.Role(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.Auth(testSecret)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantUser, gotUser)
				assert.Equal(t, tc.wantRole, gotRole)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/orders/1", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), "admin-1", middleware.RoleAdmin))
		rr := httptest.NewRecorder()

		middleware.AdminOnly(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("buyer is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/orders/1", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), "user-1", ""))
		rr := httptest.NewRecorder()

		middleware.AdminOnly(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
