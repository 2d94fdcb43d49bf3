package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionClaims 是放在 session cookie 裡的簽章內容
type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.StandardClaims
}

// GenerateSessionToken 簽發一個帶有 admin 旗標的 session token
func GenerateSessionToken(secret []byte, admin bool, ttl time.Duration, now time.Time) (string, error) {
	claims := SessionClaims{
		Admin: admin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(secret)
}

// ParseSessionToken 解析和驗證 session token，只接受 HMAC 簽章
func ParseSessionToken(secret []byte, token string) (*SessionClaims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*SessionClaims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	if err == nil {
		err = fmt.Errorf("invalid session token")
	}
	return nil, err
}
