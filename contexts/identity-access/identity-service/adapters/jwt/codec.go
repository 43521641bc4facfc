package jwtadapter

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
)

// Claims carried by a signed access token. The registered ID is the token
// row identifier, so logout can revoke a still-valid signature.
type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 access tokens.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(account entities.Account, tokenID string, expiresAt time.Time) (string, error) {
	claims := Claims{
		AccountID: account.ID,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *Codec) Parse(raw string) (ports.TokenClaims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return ports.TokenClaims{}, err
	}
	if !token.Valid {
		return ports.TokenClaims{}, errors.New("invalid token")
	}
	return ports.TokenClaims{
		AccountID: claims.AccountID,
		Role:      claims.Role,
		TokenID:   claims.ID,
	}, nil
}
