// Package jwt проверяет входящие Bearer-токены. Токены выпускает внешний
// сервис аутентификации платформы, здесь только верификация.
package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims включает стандартные и наш флаг администратора.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}
