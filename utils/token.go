package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpiry extracts the "exp" claim from a bearer token issued by the API.
// The signature is not verified here; the signing key belongs to the API and the
// token is only inspected to bound the local session lifetime.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("token does not contain a valid 'exp' claim")
	}
	return time.Unix(int64(exp), 0), nil
}

// TokenSubject extracts the "sub" claim from a bearer token without verifying it.
func TokenSubject(tokenString string) (string, error) {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
