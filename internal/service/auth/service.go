package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
	"github.com/clinicdesk/clinic-api/pkg/security"
	"github.com/clinicdesk/clinic-api/pkg/token"
)

type Service struct {
	doctorRepo repository.DoctorRepository
	hasher     security.PasswordHasher
	tokenSvc   token.Service
}

func NewService(doctorRepo repository.DoctorRepository, hasher security.PasswordHasher, tokenSvc token.Service) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		hasher:     hasher,
		tokenSvc:   tokenSvc,
	}
}

// Signup registers a new doctor. The email must not already have a record;
// the password is stored as a bcrypt hash only.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.Doctor, error) {
	existing, err := s.doctorRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("doctor with given email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	doctor := &model.Doctor{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, apperrors.Internal(err)
	}

	log.Info().Str("email", doctor.Email).Msg("doctor registered")
	return doctor, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	doctor, err := s.doctorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.Unauthorized("invalid email or password")
		}
		return "", apperrors.Internal(err)
	}

	if err := s.hasher.Compare(doctor.Password, password); err != nil {
		return "", apperrors.Unauthorized("invalid email or password")
	}

	signed, err := s.tokenSvc.Generate(doctor.ID.Hex(), doctor.Email)
	if err != nil {
		return "", apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	log.Info().Str("email", email).Msg("doctor logged in")
	return signed, nil
}

// VerifyToken decodes a bearer token into its claims.
func (s *Service) VerifyToken(tokenString string) (*model.TokenClaims, error) {
	claims, err := s.tokenSvc.Verify(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}
