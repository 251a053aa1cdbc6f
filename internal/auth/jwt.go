package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// JWTManager issues and verifies session tokens.
// Tokens are stateless: there is no refresh and no revocation list.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Claims is the verified payload of a session token: {id, tipo}.
type Claims struct {
	AccountID int64  `json:"id"`
	Role      string `json:"tipo"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 JWT carrying the account id and role.
func (m *JWTManager) GenerateToken(accountID int64, role domain.AccountRole) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Role:      role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and verifies a session token. Every failure wraps
// domain.ErrInvalidToken.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrInvalidToken)
	}

	if claims.AccountID <= 0 {
		return nil, fmt.Errorf("invalid account id %d: %w", claims.AccountID, domain.ErrInvalidToken)
	}
	if !domain.AccountRole(claims.Role).IsValid() {
		return nil, fmt.Errorf("invalid role %q: %w", claims.Role, domain.ErrInvalidToken)
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}
