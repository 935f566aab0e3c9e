package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el snapshot del principal.
// El snapshot (rol y supplier_id) se captura en el login y NO se refresca
// de la DB en peticiones posteriores: un cambio de rol o de proveedor hecho
// por un owner no afecta a la sesión en curso hasta el siguiente login.
type Claims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"user_id"`
	Role       string `json:"role"` // "owner" | "supplier"
	SupplierID *int64 `json:"supplier_id,omitempty"`
}

// Generate genera un token JWT firmado con el snapshot del usuario.
func Generate(secret string, userID int64, role string, supplierID *int64, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     userID,
		Role:       role,
		SupplierID: supplierID,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el snapshot del principal.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID int64, role string, supplierID *int64, err error) {
	if secret == "" {
		return 0, "", nil, fmt.Errorf("token: secret vacío")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return 0, "", nil, fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.Role, claims.SupplierID, nil
}
