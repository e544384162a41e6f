package middleware

import (
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/errors"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

const (
	CALLER_KIND_JWT    = "jwt"
	CALLER_KIND_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Caller is the authenticated principal of a ledger request.
// JWT callers are named by their subject; API key callers by a fingerprint of the key.
type Caller struct {
	Kind    string
	Subject string
}

func (c Caller) String() string {
	return c.Kind + ":" + c.Subject
}

type callerKey struct{}

// WithCaller attaches the caller to ctx; every log line written under ctx names it
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, callerKey{}, caller)
	return logger.WithFields(ctx, zap.Stringer("caller", caller))
}

// CallerFromContext returns the caller authenticated for the request
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}

// authenticator resolves Authorization headers against keys parsed once at startup
type authenticator struct {
	publicKey    *rsa.PublicKey
	publicKeyErr error
	// apiKeys maps a key to its fingerprint
	apiKeys map[string]string
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{apiKeys: make(map[string]string, len(cfg.APIKeys))}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = fingerprint(key)
		}
	}

	if cfg.JWTPublicKey == "" {
		a.publicKeyErr = errors.New("JWT public key not configured")
	} else if a.publicKey, a.publicKeyErr = parseRSAPublicKey(cfg.JWTPublicKey); a.publicKeyErr != nil {
		a.publicKeyErr = fmt.Errorf("failed to parse RSA public key: %w", a.publicKeyErr)
	}

	return a
}

// fingerprint names an API key in logs without revealing it
func fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

// Authenticate resolves the caller of an Authorization header
func Authenticate(authHeader string, cfg AuthConfig) (Caller, error) {
	return newAuthenticator(cfg).authenticate(authHeader)
}

func (a *authenticator) authenticate(authHeader string) (Caller, error) {
	if authHeader == "" {
		return Caller{}, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok {
		return Caller{}, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return Caller{}, err
		}
		if claims.Subject == "" {
			return Caller{}, errors.New("token has no subject")
		}
		return Caller{Kind: CALLER_KIND_JWT, Subject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return Caller{}, errors.New("no API keys configured")
		}
		id, ok := a.apiKeys[credentials]
		if !ok {
			return Caller{}, errors.New("invalid API key")
		}
		return Caller{Kind: CALLER_KIND_APIKEY, Subject: id}, nil

	default:
		return Caller{}, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth accepts service JWTs and API keys
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return authMiddleware(newAuthenticator(cfg), false)
}

// APIKeyAuth only accepts API keys; it guards the operator endpoints
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return authMiddleware(newAuthenticator(cfg), true)
}

func authMiddleware(a *authenticator, apiKeyOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := a.authenticate(c.GetHeader("Authorization"))
		if err == nil && apiKeyOnly && caller.Kind != CALLER_KIND_APIKEY {
			err = errors.New("endpoint requires an API key")
		}

		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Request = c.Request.WithContext(WithCaller(c.Request.Context(), caller))
		logger.DebugCtx(c.Request.Context(), "Authenticated caller", zap.String("path", c.Request.URL.Path))

		c.Next()
	}
}

// validateJWT checks an RS256 token and its time claims
func (a *authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKeyErr != nil {
		return nil, a.publicKeyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey accepts PKIX and PKCS1 encoded keys
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}
	return rsaKey, nil
}
