package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Treatment is a catalog entry pairing a disease with its medication.
type Treatment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Disease     string             `bson:"disease" json:"disease"`
	Medication  string             `bson:"medication" json:"medication"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Doctor      string             `bson:"doctor" json:"doctor"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type TreatmentRequest struct {
	Disease     string `json:"disease" binding:"required"`
	Medication  string `json:"medication" binding:"required"`
	Description string `json:"description"`
	Doctor      string `json:"doctor" binding:"required"`
}
