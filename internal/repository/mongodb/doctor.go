package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	"github.com/clinicdesk/clinic-api/pkg/metrics"
)

type doctorRepository struct {
	coll    *mongo.Collection
	metrics *metrics.Metrics
}

func NewDoctorRepository(db *mongo.Database, m *metrics.Metrics) repository.DoctorRepository {
	return &doctorRepository{coll: db.Collection("doctors"), metrics: m}
}

func (r *doctorRepository) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		status = "error"
	}
	r.metrics.DatabaseOperations.WithLabelValues("doctors", op, status).Inc()
	r.metrics.DatabaseLatency.WithLabelValues("doctors", op).Observe(time.Since(start).Seconds())
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (err error) {
	start := time.Now()
	defer func() { r.observe("insert", start, err) }()

	now := time.Now().UTC()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	if doctor.JoinedAt.IsZero() {
		doctor.JoinedAt = now
	}
	if doctor.Role == "" {
		doctor.Role = "doctor"
	}
	if doctor.ImageURL == "" {
		doctor.ImageURL = model.DefaultDoctorImage
	}

	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = oid
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (doctor *model.Doctor, err error) {
	start := time.Now()
	defer func() { r.observe("find_one", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	doctor = &model.Doctor{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (doctor *model.Doctor, err error) {
	start := time.Now()
	defer func() { r.observe("find_one", start, err) }()

	doctor = &model.Doctor{}
	err = r.coll.FindOne(ctx, bson.M{"email": email}).Decode(doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor by email: %w", err)
	}
	return doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) (doctors []*model.Doctor, err error) {
	start := time.Now()
	defer func() { r.observe("find", start, err) }()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors = []*model.Doctor{}
	if err = cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) UpdateImage(ctx context.Context, id, imageURL string) (doctor *model.Doctor, err error) {
	start := time.Now()
	defer func() { r.observe("update", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	doctor = &model.Doctor{}
	after := options.After
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": time.Now().UTC()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update doctor image: %w", err)
	}
	return doctor, nil
}
