package repository

import (
	"context"
	"errors"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// ErrNotFound is returned when a record does not exist. Callers map it to a
// 404 at the handler boundary.
var ErrNotFound = errors.New("record not found")

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id string) (*model.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	UpdateImage(ctx context.Context, id, imageURL string) (*model.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id string) error
}

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *model.Treatment) error
	Get(ctx context.Context, id string) (*model.Treatment, error)
	List(ctx context.Context) ([]*model.Treatment, error)
	Update(ctx context.Context, treatment *model.Treatment) error
	Delete(ctx context.Context, id string) error
}
