package authorization

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

type Claims struct {
	Role  model.Role `json:"role"`
	Email string     `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs HS256 access tokens and generates opaque refresh tokens.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenManager(secret, issuer, audience string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *TokenManager) GenerateAccessToken(user *model.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		Role:  user.Role,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("authorization: cannot sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("authorization: cannot generate refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func (m *TokenManager) ParseAccessToken(token string, allowExpired bool) (uuid.UUID, model.Role, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	parser := jwt.NewParser(opts...)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("authorization: invalid token: %v: %w", err, errdefs.ErrAuthentication)
	}

	if claims.Issuer != m.issuer || !claims.VerifyAudience(m.audience, true) {
		return uuid.Nil, "", fmt.Errorf("authorization: issuer or audience mismatch: %w", errdefs.ErrAuthentication)
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("authorization: unknown role %q: %w", claims.Role, errdefs.ErrAuthentication)
	}
	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("authorization: cannot parse subject %s: %w", claims.Subject, errdefs.ErrAuthentication)
	}
	return userId, claims.Role, nil
}
