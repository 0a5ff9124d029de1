package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims
type Claims struct {
	KeyFingerprint string `json:"key_fingerprint"`
	jwt.RegisteredClaims
}
