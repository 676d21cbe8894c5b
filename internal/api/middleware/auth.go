package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/api/apierrors"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

const (
	AUTH_TYPE_KEY    = "auth_type"
	AUTH_SUBJECT_KEY = "auth_subject"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Authenticator validates Authorization headers against a parsed AuthConfig
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   []string
}

// NewAuthenticator parses the configured public key once. An empty key disables JWT authentication.
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, key)
		}
	}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}

	return a, nil
}

// Authenticate validates the Authorization header and returns the auth type and subject
func (a *Authenticator) Authenticate(authHeader string) (authType string, subject string, err error) {
	if authHeader == "" {
		return "", "", errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return "", "", errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return "", "", err
		}
		return AuthTypeJWT, claims.Subject, nil

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return "", "", err
		}
		return AuthTypeAPIKey, "", nil

	default:
		return "", "", fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware accepting a JWT (Bearer) or an API key (ApiKey)
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authType, subject, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(AUTH_TYPE_KEY, authType)
		if subject != "" {
			c.Set(AUTH_SUBJECT_KEY, subject)
		}

		c.Next()
	}
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are checked by the parser.
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return nil
		}
	}

	return errors.New("invalid API key")
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
