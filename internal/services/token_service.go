package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// accessTokenTTL is the fixed lifetime of an issued access token.
const accessTokenTTL = 30 * time.Minute

// TokenService issues and validates signed bearer tokens. It performs no
// credential check itself; callers must verify credentials first (see
// CredentialVerifier).
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenService creates a new TokenService with the given HMAC signing
// key, issuer and audience.
func NewTokenService(secret, issuer, audience string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// GenerateAccessToken builds an HS256-signed token carrying the username as
// subject, the configured issuer and audience, and a 30-minute expiry.
func (s *TokenService) GenerateAccessToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   username,
		Issuer:    s.issuer,
		Audience:  s.audience,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(accessTokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token string, returning its claims.
func (s *TokenService) ValidateToken(tokenString string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if s.audience != "" && !claims.VerifyAudience(s.audience, true) {
		return nil, fmt.Errorf("invalid token audience")
	}
	return claims, nil
}
