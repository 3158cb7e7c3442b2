package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más la identidad del local autenticado.
// ID (jti) identifica el token para poder revocarlo en logout.
type Claims struct {
	jwt.RegisteredClaims
	StoreID int64  `json:"store_id"`
	Login   string `json:"usuario"`
	Name    string `json:"nombre"`
}

// Identity datos del local que se firman en el token.
type Identity struct {
	StoreID int64
	Login   string
	Name    string
}

// Generate genera un token JWT firmado (HS256) para el local indicado.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, *Claims, error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vacío")
	}
	if id.StoreID <= 0 {
		return "", nil, fmt.Errorf("jwt: store_id inválido")
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(id.StoreID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		StoreID: id.StoreID,
		Login:   id.Login,
		Name:    id.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.StoreID <= 0 {
		return nil, fmt.Errorf("claims sin store_id")
	}
	return claims, nil
}
