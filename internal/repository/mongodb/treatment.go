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

type treatmentRepository struct {
	coll    *mongo.Collection
	metrics *metrics.Metrics
}

func NewTreatmentRepository(db *mongo.Database, m *metrics.Metrics) repository.TreatmentRepository {
	return &treatmentRepository{coll: db.Collection("treatments"), metrics: m}
}

func (r *treatmentRepository) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		status = "error"
	}
	r.metrics.DatabaseOperations.WithLabelValues("treatments", op, status).Inc()
	r.metrics.DatabaseLatency.WithLabelValues("treatments", op).Observe(time.Since(start).Seconds())
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) (err error) {
	start := time.Now()
	defer func() { r.observe("insert", start, err) }()

	now := time.Now().UTC()
	treatment.CreatedAt = now
	treatment.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, treatment)
	if err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		treatment.ID = oid
	}
	return nil
}

func (r *treatmentRepository) Get(ctx context.Context, id string) (treatment *model.Treatment, err error) {
	start := time.Now()
	defer func() { r.observe("find_one", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	treatment = &model.Treatment{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(treatment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}
	return treatment, nil
}

func (r *treatmentRepository) List(ctx context.Context) (treatments []*model.Treatment, err error) {
	start := time.Now()
	defer func() { r.observe("find", start, err) }()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	defer cursor.Close(ctx)

	treatments = []*model.Treatment{}
	if err = cursor.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("failed to decode treatments: %w", err)
	}
	return treatments, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *model.Treatment) (err error) {
	start := time.Now()
	defer func() { r.observe("update", start, err) }()

	res, err := r.coll.UpdateByID(ctx, treatment.ID, bson.M{"$set": bson.M{
		"disease":     treatment.Disease,
		"medication":  treatment.Medication,
		"description": treatment.Description,
		"doctor":      treatment.Doctor,
		"updatedAt":   time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { r.observe("delete", start, err) }()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
