package tokenezation

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

// GenerateToken issues an HS256 token naming the keypad session owner.
func GenerateToken(login string, secret string, ttl time.Duration) (string, error) {
	if login == "" {
		return "", fmt.Errorf("%w: empty login", locerr.ErrInvalidToken)
	}
	iat := time.Now()
	exp := iat.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": login,
		"iat":   iat.Unix(),
		"nbf":   iat.Unix(),
		"exp":   exp.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// CheckToken validates the signature and time claims and returns the login.
func CheckToken(tokenString string, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", locerr.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", locerr.ErrInvalidToken
	}
	login, ok := claims["login"].(string)
	if !ok || login == "" {
		return "", fmt.Errorf("%w: login claim is missing", locerr.ErrInvalidToken)
	}
	return login, nil
}
