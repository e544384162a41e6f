package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/middleware"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, pub := newKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: pub, APIKeys: []string{"key-1"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "svc-inference",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "svc-inference",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	otherKey, _ := newKeyPair(t)
	forged := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "svc-inference"})

	noSubject := signToken(t, key, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})

	tests := []struct {
		name     string
		header   string
		wantOK   bool
		wantKind string
	}{
		{"valid jwt", "Bearer " + valid, true, middleware.CALLER_KIND_JWT},
		{"expired jwt", "Bearer " + expired, false, ""},
		{"forged jwt", "Bearer " + forged, false, ""},
		{"jwt without subject", "Bearer " + noSubject, false, ""},
		{"valid api key", "ApiKey key-1", true, middleware.CALLER_KIND_APIKEY},
		{"invalid api key", "ApiKey key-2", false, ""},
		{"empty", "", false, ""},
		{"no scheme", "key-1", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller, err := middleware.Authenticate(tt.header, cfg)
			if !tt.wantOK {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, caller.Kind)
		})
	}

	caller, err := middleware.Authenticate("Bearer "+valid, cfg)
	require.NoError(t, err)
	assert.Equal(t, "jwt:svc-inference", caller.String())

	// API keys are named by a fingerprint, never by the key itself
	caller, err = middleware.Authenticate("ApiKey key-1", cfg)
	require.NoError(t, err)
	assert.Len(t, caller.Subject, 8)
	assert.NotContains(t, caller.Subject, "key-1")
}

func TestAuth_AttachesCallerToRequestLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, pub := newKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: pub}
	token := signToken(t, key, jwt.RegisteredClaims{Subject: "svc-inference"})

	core, logs := observer.New(zapcore.InfoLevel)
	t.Cleanup(logger.Replace(zap.New(core)))

	router := gin.New()
	router.POST("/reservations", middleware.Auth(cfg), func(c *gin.Context) {
		caller, ok := middleware.CallerFromContext(c.Request.Context())
		assert.True(t, ok)
		assert.Equal(t, "svc-inference", caller.Subject)

		logger.InfoCtx(c.Request.Context(), "Reserved credit")
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	entries := logs.FilterMessage("Reserved credit").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "jwt:svc-inference", entries[0].ContextMap()["caller"])
}

func TestAPIKeyAuth_RejectsJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, pub := newKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: pub, APIKeys: []string{"key-1"}}
	token := signToken(t, key, jwt.RegisteredClaims{Subject: "svc"})

	router := gin.New()
	router.GET("/svc", middleware.Auth(cfg), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/ops", middleware.APIKeyAuth(cfg), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(path, header string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("/svc", "Bearer "+token))
	assert.Equal(t, http.StatusNoContent, call("/svc", "ApiKey key-1"))
	assert.Equal(t, http.StatusUnauthorized, call("/ops", "Bearer "+token))
	assert.Equal(t, http.StatusNoContent, call("/ops", "ApiKey key-1"))
}
