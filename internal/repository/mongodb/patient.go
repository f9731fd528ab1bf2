package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	"github.com/clinicdesk/clinic-api/pkg/metrics"
)

type patientRepository struct {
	coll    *mongo.Collection
	metrics *metrics.Metrics
}

func NewPatientRepository(db *mongo.Database, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{coll: db.Collection("patients"), metrics: m}
}

func (r *patientRepository) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		status = "error"
	}
	r.metrics.DatabaseOperations.WithLabelValues("patients", op, status).Inc()
	r.metrics.DatabaseLatency.WithLabelValues("patients", op).Observe(time.Since(start).Seconds())
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (err error) {
	start := time.Now()
	defer func() { r.observe("insert", start, err) }()

	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		patient.ID = oid
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id string) (patient *model.Patient, err error) {
	start := time.Now()
	defer func() { r.observe("find_one", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	patient = &model.Patient{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (r *patientRepository) List(ctx context.Context) (patients []*model.Patient, err error) {
	start := time.Now()
	defer func() { r.observe("find", start, err) }()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer cursor.Close(ctx)

	patients = []*model.Patient{}
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// Update overwrites the full set of writable fields; partial updates are not
// supported at the API level.
func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (err error) {
	start := time.Now()
	defer func() { r.observe("update", start, err) }()

	res, err := r.coll.UpdateByID(ctx, patient.ID, bson.M{"$set": bson.M{
		"fullName":       patient.FullName,
		"gender":         patient.Gender,
		"dateOfBirth":    patient.DateOfBirth,
		"disease":        patient.Disease,
		"treatments":     patient.Treatments,
		"assignedDoctor": patient.AssignedDoctor,
		"patientPhone":   patient.PatientPhone,
		"notes":          patient.Notes,
		"updatedAt":      time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { r.observe("delete", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
