package patient

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Service struct {
	patientRepo repository.PatientRepository
}

func NewService(patientRepo repository.PatientRepository) *Service {
	return &Service{patientRepo: patientRepo}
}

// CreatePatient persists a fully validated patient record. The assigned
// doctor reference is stored as-is; referential integrity is not checked.
func (s *Service) CreatePatient(ctx context.Context, req *model.PatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		FullName:       req.FullName,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Disease:        req.Disease,
		Treatments:     req.Treatments,
		AssignedDoctor: req.AssignedDoctor,
		PatientPhone:   req.PatientPhone,
		Notes:          req.Notes,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	patient, err := s.patientRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient")
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, req *model.PatientRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("patient")
	}

	patient := &model.Patient{
		ID:             oid,
		FullName:       req.FullName,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Disease:        req.Disease,
		Treatments:     req.Treatments,
		AssignedDoctor: req.AssignedDoctor,
		PatientPhone:   req.PatientPhone,
		Notes:          req.Notes,
	}
	if err := s.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("patient")
		}
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("patient")
		}
		return apperrors.Internal(err)
	}
	return nil
}
