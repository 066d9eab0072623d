package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GuestbookEntry is a visitor testimonial. Approved is a moderation flag that
// only an administrator outside this service can set.
type GuestbookEntry struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name" validate:"required"`
	Email       string        `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Company     string        `bson:"company,omitempty" json:"company,omitempty"`
	Role        string        `bson:"role,omitempty" json:"role,omitempty"`
	Message     string        `bson:"message" json:"message" validate:"required"`
	Rating      *int          `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	SubmittedAt time.Time     `bson:"date" json:"date"`
	Approved    bool          `bson:"approved" json:"approved"`
}

// GuestbookRequest is the body of POST /api/guestbook. Approved is not
// accepted from clients.
type GuestbookRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Message string `json:"message" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Normalize trims surrounding whitespace from every text field.
func (r *GuestbookRequest) Normalize() {
	for _, f := range []*string{&r.Name, &r.Email, &r.Company, &r.Role, &r.Message} {
		*f = strings.TrimSpace(*f)
	}
}

func (r *GuestbookRequest) ToEntry() *GuestbookEntry {
	return &GuestbookEntry{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Role:    r.Role,
		Message: r.Message,
		Rating:  r.Rating,
	}
}
