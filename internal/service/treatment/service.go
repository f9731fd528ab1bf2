package treatment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Service struct {
	treatmentRepo repository.TreatmentRepository
}

func NewService(treatmentRepo repository.TreatmentRepository) *Service {
	return &Service{treatmentRepo: treatmentRepo}
}

func (s *Service) CreateTreatment(ctx context.Context, req *model.TreatmentRequest) (*model.Treatment, error) {
	treatment := &model.Treatment{
		Disease:     req.Disease,
		Medication:  req.Medication,
		Description: req.Description,
		Doctor:      req.Doctor,
	}
	if err := s.treatmentRepo.Create(ctx, treatment); err != nil {
		return nil, apperrors.Internal(err)
	}
	return treatment, nil
}

func (s *Service) GetTreatment(ctx context.Context, id string) (*model.Treatment, error) {
	treatment, err := s.treatmentRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("treatment")
		}
		return nil, apperrors.Internal(err)
	}
	return treatment, nil
}

func (s *Service) ListTreatments(ctx context.Context) ([]*model.Treatment, error) {
	treatments, err := s.treatmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return treatments, nil
}

func (s *Service) UpdateTreatment(ctx context.Context, id string, req *model.TreatmentRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("treatment")
	}

	treatment := &model.Treatment{
		ID:          oid,
		Disease:     req.Disease,
		Medication:  req.Medication,
		Description: req.Description,
		Doctor:      req.Doctor,
	}
	if err := s.treatmentRepo.Update(ctx, treatment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("treatment")
		}
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) DeleteTreatment(ctx context.Context, id string) error {
	if err := s.treatmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("treatment")
		}
		return apperrors.Internal(err)
	}
	return nil
}
