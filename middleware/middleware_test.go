package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protected(roles ...string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := GetSubjectFromContext(r.Context())
		w.Header().Set("X-Subject", sub)
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(testSecret)(Authorize(roles...)(ok))
}

func TestAuthenticate(t *testing.T) {
	valid := signed(t, testSecret, jwt.MapClaims{
		"sub": "ops@ladder.test", "role": "operator", "exp": time.Now().Add(time.Hour).Unix(),
	})
	expired := signed(t, testSecret, jwt.MapClaims{
		"sub": "ops@ladder.test", "role": "operator", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	foreign := signed(t, "other-secret", jwt.MapClaims{"sub": "x", "role": "operator"})
	viewer := signed(t, testSecret, jwt.MapClaims{"sub": "fan", "role": "viewer"})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid operator", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/players", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected("operator").ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "ops@ladder.test", rec.Header().Get("X-Subject"))
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(6, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:5000"), "limits are per address")

	now = now.Add(10 * time.Second)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5003"), "one token refilled")
}
