package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the fields carried by customer and admin bearer tokens.
type TokenClaims struct {
	Subject   string
	Email     string
	Kind      string
	Role      string
	ExpiresAt time.Time
}

// GenerateToken creates a signed JWT token for subject. The token expires
// after the specified duration.
func GenerateToken(secret []byte, kind, subject, email, role string, duration time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token secret is not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"kind": kind,
		"iat":  now.Unix(),
		"exp":  now.Add(duration).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}
	if role != "" {
		claims["role"] = role
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(secret []byte, tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	out := &TokenClaims{Subject: sub}
	out.Kind, _ = claims["kind"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
