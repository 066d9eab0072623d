package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collaboration is a stored project inquiry. Records are never updated.
type Collaboration struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string        `bson:"name" json:"name" validate:"required"`
	Email        string        `bson:"email" json:"email" validate:"required,email"`
	Company      string        `bson:"company,omitempty" json:"company,omitempty"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ProjectType  string        `bson:"projectType,omitempty" json:"projectType,omitempty"`
	Budget       string        `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline     string        `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Requirements string        `bson:"requirements,omitempty" json:"requirements,omitempty"`
	SubmittedAt  time.Time     `bson:"date" json:"date"`
}

// CollaborationRequest is the body of POST /api/collaborate.
type CollaborationRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	ProjectType  string `json:"projectType"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// Normalize trims surrounding whitespace from every field.
func (r *CollaborationRequest) Normalize() {
	for _, f := range []*string{
		&r.Name, &r.Email, &r.Company, &r.Phone, &r.ProjectType,
		&r.Budget, &r.Timeline, &r.Description, &r.Requirements,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (r *CollaborationRequest) ToCollaboration() *Collaboration {
	return &Collaboration{
		Name:         r.Name,
		Email:        r.Email,
		Company:      r.Company,
		Phone:        r.Phone,
		ProjectType:  r.ProjectType,
		Budget:       r.Budget,
		Timeline:     r.Timeline,
		Description:  r.Description,
		Requirements: r.Requirements,
	}
}
