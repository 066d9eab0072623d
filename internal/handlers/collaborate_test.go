package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-api/internal/models"
	"portfolio-api/internal/notify"
	"portfolio-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collaborationRouter(store CollaborationStore, notifier notify.Notifier) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/collaborate", NewCollaborationHandler(store, notifier).Submit)
	return r
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) validationResponse {
	t.Helper()
	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCollaborationHandler_Submit_Success(t *testing.T) {
	store := new(MockCollaborationStore)
	notifier := new(MockNotifier)

	store.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Collaboration) bool {
		return c.Name == "Ada" && c.Email == "ada@example.com" && c.Company == "Analytical Engines" &&
			c.ProjectType == "Web" && c.Requirements == "Go"
	})).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.Subject == "New Collaboration Request" &&
			n.ReplyTo == "ada@example.com" &&
			strings.Contains(n.Text, "Project Type: Web")
	})).Return(nil).Once()

	w := postJSON(t, collaborationRouter(store, notifier), "/api/collaborate",
		`{"name":" Ada ","email":"ada@example.com","company":"Analytical Engines","projectType":"Web","requirements":"Go"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Collaboration request submitted!"}`, w.Body.String())
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCollaborationHandler_Submit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "missing name", body: `{"email":"ada@example.com"}`, fields: []string{"name"}},
		{name: "blank name", body: `{"name":"   ","email":"ada@example.com"}`, fields: []string{"name"}},
		{name: "malformed email", body: `{"name":"Ada","email":"ada-at-example"}`, fields: []string{"email"}},
		{name: "missing both", body: `{}`, fields: []string{"name", "email"}},
		{name: "non-string optional", body: `{"name":"Ada","email":"ada@example.com","budget":5000}`, fields: []string{"budget"}},
		{name: "not json", body: `name=Ada`, fields: []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCollaborationStore)
			notifier := new(MockNotifier)

			w := postJSON(t, collaborationRouter(store, notifier), "/api/collaborate", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeValidation(t, w)
			assert.False(t, resp.Success)
			var fields []string
			for _, fe := range resp.Errors {
				fields = append(fields, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.fields, fields)

			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestCollaborationHandler_Submit_StoreFailure(t *testing.T) {
	store := new(MockCollaborationStore)
	notifier := new(MockNotifier)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	w := postJSON(t, collaborationRouter(store, notifier), "/api/collaborate",
		`{"name":"Ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to submit collaboration request."}`, w.Body.String())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCollaborationHandler_Submit_StoreRejectsRecord(t *testing.T) {
	store := new(MockCollaborationStore)
	notifier := new(MockNotifier)
	store.On("Create", mock.Anything, mock.Anything).
		Return(validation.Errors{{Field: "email", Message: "Valid email is required"}})

	w := postJSON(t, collaborationRouter(store, notifier), "/api/collaborate",
		`{"name":"Ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, validation.Errors{{Field: "email", Message: "Valid email is required"}}, decodeValidation(t, w).Errors)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCollaborationHandler_Submit_NotificationFailureStillSucceeds(t *testing.T) {
	store := new(MockCollaborationStore)
	notifier := new(MockNotifier)
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("provider timeout")).Once()

	w := postJSON(t, collaborationRouter(store, notifier), "/api/collaborate",
		`{"name":"Ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Collaboration request submitted!"}`, w.Body.String())
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
