package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Firmador emits and checks the signed bearer token that wraps an opaque
// token id. It validates integrity, issuer, audience and lifetime only;
// liveness and revocation are the Service's job.
type Firmador struct {
	secreto   []byte
	emisor    string
	audiencia string
	ttl       time.Duration
}

func NewFirmador(secreto, emisor, audiencia string, ttl time.Duration) *Firmador {
	return &Firmador{secreto: []byte(secreto), emisor: emisor, audiencia: audiencia, ttl: ttl}
}

// Emitir signs a bearer token embedding the opaque token id (jti) and the
// user id (sub).
func (f *Firmador) Emitir(idToken, idUsuario string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		ID:        idToken,
		Subject:   idUsuario,
		Issuer:    f.emisor,
		Audience:  jwt.ClaimStrings{f.audiencia},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secreto)
}

// Validar parses the raw token and checks signature, issuer, audience and
// lifetime. Returns the embedded claims when every check passes.
func (f *Firmador) Validar(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) { return f.secreto, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(f.emisor),
		jwt.WithAudience(f.audiencia),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token sin identificador de sesión")
	}
	return claims, nil
}
