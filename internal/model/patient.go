package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is a care record owned conceptually by the assigned doctor.
// The treatments field is free text, not a relation to the treatment catalog.
type Patient struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Gender         string             `bson:"gender" json:"gender"`
	DateOfBirth    time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Disease        string             `bson:"disease" json:"disease"`
	Treatments     string             `bson:"treatments" json:"treatments"`
	AssignedDoctor string             `bson:"assignedDoctor" json:"assignedDoctor"`
	PatientPhone   string             `bson:"patientPhone" json:"patientPhone"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PatientRequest carries the full patient payload for both create and update;
// validation is all-or-nothing on the required fields.
type PatientRequest struct {
	FullName       string    `json:"fullName" binding:"required"`
	Gender         string    `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth    time.Time `json:"dateOfBirth" binding:"required"`
	Disease        string    `json:"disease" binding:"required"`
	Treatments     string    `json:"treatments" binding:"required"`
	AssignedDoctor string    `json:"assignedDoctor" binding:"required"`
	PatientPhone   string    `json:"patientPhone" binding:"required"`
	Notes          string    `json:"notes" binding:"required"`
}
