package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

func intPtr(i int) *int { return &i }

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Ada"}))
	assert.NoError(t, Struct(sample{Name: "Ada", Email: "ada@example.com", Rating: intPtr(5)}))
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(sample{Email: "not-an-email", Rating: intPtr(6)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, Errors{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Valid email is required"},
		{Field: "rating", Message: "rating must be at most 5"},
	}, verrs)
}

func TestStruct_RatingLowerBound(t *testing.T) {
	var verrs Errors
	require.True(t, errors.As(Struct(sample{Name: "Ada", Rating: intPtr(0)}), &verrs))
	assert.Equal(t, "rating must be at least 1", verrs[0].Message)
}

func TestErrors_Error(t *testing.T) {
	e := Errors{{Field: "name", Message: "Name is required"}, {Field: "email", Message: "Valid email is required"}}
	assert.Equal(t, "name: Name is required; email: Valid email is required", e.Error())
}

func TestFromDecodeError_TypeMismatch(t *testing.T) {
	var dst sample
	err := json.Unmarshal([]byte(`{"name":"Ada","rating":"five"}`), &dst)
	require.Error(t, err)

	verrs := FromDecodeError(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "rating", verrs[0].Field)
	assert.Equal(t, "rating must be a whole number", verrs[0].Message)
}

func TestFromDecodeError_Malformed(t *testing.T) {
	var dst sample
	err := json.Unmarshal([]byte(`{"name":`), &dst)
	require.Error(t, err)

	assert.Equal(t, Errors{{Field: "body", Message: "Request body must be a valid JSON object"}}, FromDecodeError(err))
}

func TestFromDecodeError_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var dst sample
	err := json.NewDecoder(req.Body).Decode(&dst)
	require.Error(t, err)

	assert.Equal(t, Errors{{Field: "body", Message: "Request body is too large"}}, FromDecodeError(err))
}
