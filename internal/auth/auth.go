// Package auth issues and validates the bearer tokens gating write access.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrNoSecret      = errors.New("JWT_SECRET must be set")
	ErrNoToken       = errors.New("a bearer token is required")
	ErrInvalidToken  = errors.New("the token is invalid or expired")
	ErrAdminRequired = errors.New("this action requires the ADMIN role")
)

// Claims are the token claims of a logged in user.
type Claims struct {
	UsuarioID uint64      `json:"usuario_id"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok || s == "" {
		return nil, ErrNoSecret
	}

	return []byte(s), nil
}

// NewToken signs a token for the user, valid for 24 hours.
func NewToken(usuarioID uint64, role models.Role) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	claims := &Claims{
		UsuarioID: usuarioID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken validates a raw token and returns its claims.
func ParseToken(raw string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

const claimsKey = "authClaims"

// Middleware validates the Authorization header and stores the claims in
// the request context. Requests without a valid token are rejected.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoToken.Error()})
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the ADMIN role.
// It must run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrAdminRequired.Error()})
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by Middleware.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}
