// Package authtoken issues and verifies the HS256 access and refresh tokens.
package authtoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Claims struct {
	UID      string `json:"uid,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Issuer struct {
	AccessSecret  []byte
	AccessTTL     time.Duration
	RefreshSecret []byte
	RefreshTTL    time.Duration
	now           func() time.Time
}

func NewIssuer(accessSecret string, accessTTL time.Duration, refreshSecret string, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		AccessSecret:  []byte(accessSecret),
		AccessTTL:     accessTTL,
		RefreshSecret: []byte(refreshSecret),
		RefreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (i *Issuer) sign(secret []byte, ttl time.Duration, c Claims) (string, error) {
	now := i.now()
	c.Subject = c.UID
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
	if err != nil {
		return "", errors.WithMessage(err, "sign token")
	}
	return s, nil
}

// Access carries the identity fields; refresh tokens carry only the uid.
func (i *Issuer) Access(uid, username, email string) (string, error) {
	return i.sign(i.AccessSecret, i.AccessTTL, Claims{UID: uid, Username: username, Email: email})
}

func (i *Issuer) Refresh(uid string) (string, error) {
	return i.sign(i.RefreshSecret, i.RefreshTTL, Claims{UID: uid})
}

func (i *Issuer) ParseAccess(token string) (*Claims, error) {
	return i.parse(token, i.AccessSecret)
}

func (i *Issuer) ParseRefresh(token string) (*Claims, error) {
	return i.parse(token, i.RefreshSecret)
}

func (i *Issuer) parse(tokenStr string, secret []byte) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, errors.WithMessage(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UID == "" {
		claims.UID = claims.Subject
	}
	if claims.UID == "" {
		return nil, errors.New("token has no uid")
	}
	return &claims, nil
}
