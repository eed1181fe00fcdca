package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verify parses and validates an access token, returning the username and
// roles it was minted for.
func (s *authService) Verify(tokenString string) (string, []string, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims.Subject, claims.Roles, nil
}
