package utils

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// AuthenticatedUser is the actor identity resolved from a validated token.
type AuthenticatedUser struct {
	Sub      string   `json:"sub"`
	Roles    []string `json:"roles,omitempty"`
	Audience []string `json:"aud,omitempty"`
}

type contextKey string

const authenticatedUserKey contextKey = "authenticatedUser"

// WithAuthenticatedUser returns a context carrying the actor identity.
func WithAuthenticatedUser(ctx context.Context, user *AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authenticatedUserKey, user)
}

// GetAuthenticatedUser retrieves the actor identity from the context.
func GetAuthenticatedUser(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(authenticatedUserKey).(*AuthenticatedUser)
	return user, ok && user != nil
}

// JwtAuthenticator validates Bearer tokens with an HMAC secret.
type JwtAuthenticator struct {
	secret []byte
}

func NewJwtAuthenticator(secret string) *JwtAuthenticator {
	return &JwtAuthenticator{secret: []byte(secret)}
}

// ValidateToken parses and validates a token, returning the actor it names.
func (a *JwtAuthenticator) ValidateToken(tokenString string) (*AuthenticatedUser, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token is missing a subject")
	}

	user := &AuthenticatedUser{Sub: sub}
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, role := range roles {
			if s, ok := role.(string); ok {
				user.Roles = append(user.Roles, s)
			}
		}
	}
	// The aud claim may be a single string or an array of strings.
	switch aud := claims["aud"].(type) {
	case string:
		if aud != "" {
			user.Audience = []string{aud}
		}
	case []interface{}:
		for _, entry := range aud {
			if s, ok := entry.(string); ok {
				user.Audience = append(user.Audience, s)
			}
		}
	}

	return user, nil
}
