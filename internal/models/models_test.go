package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollaborationRequest_NormalizeAndMap(t *testing.T) {
	req := CollaborationRequest{
		Name:         "  Ada Lovelace ",
		Email:        " ada@example.com\n",
		Company:      "Analytical Engines",
		Phone:        " +44 20 0000 0000 ",
		ProjectType:  "Web",
		Budget:       "$5k",
		Timeline:     "Q3",
		Description:  "Portfolio revamp",
		Requirements: "Go backend",
	}
	req.Normalize()

	c := req.ToCollaboration()
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "ada@example.com", c.Email)
	assert.Equal(t, "+44 20 0000 0000", c.Phone)
	assert.Equal(t, "Go backend", c.Requirements)
	assert.True(t, c.SubmittedAt.IsZero())
	assert.True(t, c.ID.IsZero())
}

func TestGuestbookRequest_ToEntryIsUnapproved(t *testing.T) {
	rating := 4
	req := GuestbookRequest{Name: " Ada ", Message: " Great to work with! ", Rating: &rating}
	req.Normalize()

	e := req.ToEntry()
	assert.Equal(t, "Ada", e.Name)
	assert.Equal(t, "Great to work with!", e.Message)
	assert.Equal(t, 4, *e.Rating)
	assert.False(t, e.Approved)
}
