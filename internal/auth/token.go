package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the standard registered claims plus the user id,
// serialized as "id" to stay compatible with tokens the old API issued.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// TokenIssuer mints and verifies HS256 access and refresh tokens.
// The two kinds are signed with distinct secrets so one can never be
// presented in place of the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (i *TokenIssuer) AccessTTL() time.Duration  { return i.accessTTL }
func (i *TokenIssuer) RefreshTTL() time.Duration { return i.refreshTTL }

func (i *TokenIssuer) IssueAccess(userID string) (string, error) {
	return i.sign(userID, i.accessSecret, i.accessTTL)
}

func (i *TokenIssuer) IssueRefresh(userID string) (string, error) {
	return i.sign(userID, i.refreshSecret, i.refreshTTL)
}

func (i *TokenIssuer) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp only have second resolution; the jti makes every token
			// unique so rotation and per-session revocation can tell apart
			// tokens issued within the same second.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// VerifyAccess returns the user id embedded in an access token.
// Any failure (bad signature, wrong algorithm, expired) comes back as
// ErrInvalidToken; callers must not surface which check failed.
func (i *TokenIssuer) VerifyAccess(tokenString string) (string, error) {
	return i.verify(tokenString, i.accessSecret)
}

func (i *TokenIssuer) VerifyRefresh(tokenString string) (string, error) {
	return i.verify(tokenString, i.refreshSecret)
}

func (i *TokenIssuer) verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
