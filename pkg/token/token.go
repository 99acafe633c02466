package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores del servicio de tokens. Todos se traducen a respuestas 401 en la capa HTTP.
var (
	ErrExpiredToken   = errors.New("token expirado")
	ErrMalformedToken = errors.New("token malformado o firma inválida")
)

// Identity es el resultado de verificar un token: sujeto (username) y rol.
// No es el usuario completo; el middleware lo resuelve después contra la base.
type Identity struct {
	Subject string
	Role    string
}

// Claims incluye los claims estándar JWT más el rol de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Service emite y valida tokens HS256 firmados con un secreto en proceso.
// Se construye una vez en main y se inyecta; el secreto es inmutable.
type Service struct {
	secret       []byte
	ttl          time.Duration
	refreshGrace time.Duration
	issuer       string
}

// New construye el servicio. ttl es la vida del token; refreshGrace es cuánto
// tiempo después de expirar se admite todavía un refresh (ver Refreshable).
func New(secret string, ttl, refreshGrace time.Duration, issuer string) *Service {
	return &Service{
		secret:       []byte(secret),
		ttl:          ttl,
		refreshGrace: refreshGrace,
		issuer:       issuer,
	}
}

// TTL devuelve la vida configurada del token (también Max-Age de la cookie).
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue genera un token firmado con sub, role, iat y exp = now + TTL.
// Determinista para los mismos argumentos; falsificarlo requiere el secreto.
func (s *Service) Issue(subject, role string, now time.Time) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify valida firma, método y expiración contra now.
// now == exp ya cuenta como expirado (el token vale mientras now < exp).
// Retorna ErrExpiredToken o ErrMalformedToken según el fallo.
func (s *Service) Verify(raw string, now time.Time) (*Identity, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	if !claims.ExpiresAt.Time.After(now) {
		return nil, ErrExpiredToken
	}
	return &Identity{Subject: claims.Subject, Role: claims.Role}, nil
}

// ExtractSubject devuelve el sub de un token con firma válida, ignorando la
// expiración. Se usa en el flujo de refresh; nunca es prueba de identidad por
// sí solo sin un Verify/Refreshable posterior.
func (s *Service) ExtractSubject(raw string) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Refreshable decide si un token admite refresh: firma válida y expiración
// vencida como máximo hace refreshGrace. Devuelve el sujeto para re-derivar
// la identidad contra la base; más allá de la gracia retorna ErrExpiredToken.
func (s *Service) Refreshable(raw string, now time.Time) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", err
	}
	if now.After(claims.ExpiresAt.Time.Add(s.refreshGrace)) {
		return "", ErrExpiredToken
	}
	return claims.Subject, nil
}

// parse valida estructura, método HMAC y firma, sin validar expiración
// (la expiración se decide en cada operación con el `now` que recibe).
func (s *Service) parse(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedToken
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrMalformedToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrMalformedToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
