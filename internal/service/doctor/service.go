package doctor

import (
	"context"
	"errors"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Service struct {
	doctorRepo repository.DoctorRepository
}

func NewService(doctorRepo repository.DoctorRepository) *Service {
	return &Service{doctorRepo: doctorRepo}
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	doctor, err := s.doctorRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}

// UpdateImage points the doctor's profile image at a freshly stored upload
// and returns the updated record.
func (s *Service) UpdateImage(ctx context.Context, id, imageURL string) (*model.Doctor, error) {
	doctor, err := s.doctorRepo.UpdateImage(ctx, id, imageURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}
