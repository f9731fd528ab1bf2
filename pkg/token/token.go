package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// Tokens are short-lived; there is no refresh mechanism, clients
// re-authenticate when the token expires.
const Expiry = 30 * time.Minute

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service issues and verifies signed bearer tokens.
type Service interface {
	Generate(doctorID, email string) (string, error)
	Verify(tokenString string) (*model.TokenClaims, error)
}

type jwtService struct {
	secret []byte
}

func NewService(secret string) Service {
	return &jwtService{secret: []byte(secret)}
}

func (s *jwtService) Generate(doctorID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"doctorId": doctorID,
		"email":    email,
		"iat":      now.Unix(),
		"exp":      now.Add(Expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) Verify(tokenString string) (*model.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	doctorID, ok := claims["doctorId"].(string)
	if !ok || doctorID == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	out := &model.TokenClaims{DoctorID: doctorID, Email: email}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
