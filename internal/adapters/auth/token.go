package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gdhealth/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "gdhealth"

type jwtClaims struct {
	jwt.RegisteredClaims
	Kind  string   `json:"kind"`
	Roles []string `json:"roles"`
}

// JWT signs and verifies HS256 tokens whose subject is "<kind>:<id>".
type JWT struct {
	secret []byte
}

// NewJWT returns a JWT issuer/verifier using secret.
func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

var (
	_ domain.TokenIssuer   = (*JWT)(nil)
	_ domain.TokenVerifier = (*JWT)(nil)
)

func (j *JWT) Issue(p *domain.Principal, expiry time.Duration) (string, error) {
	if p == nil {
		return "", errors.New("principal is nil")
	}
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   p.Kind + ":" + strconv.FormatInt(p.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Kind:  p.Kind,
		Roles: p.Roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (j *JWT) Verify(tokenString string) (*domain.Principal, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	kind, rawID, ok := strings.Cut(claims.Subject, ":")
	if !ok || kind != claims.Kind {
		return nil, errors.New("invalid token subject")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid token subject")
	}
	return &domain.Principal{ID: id, Kind: kind, Roles: claims.Roles}, nil
}
