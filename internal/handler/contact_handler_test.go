package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chronokart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContactService is a mock implementation of ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func TestContactHandler_Submit(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		mockService := new(MockContactService)
		h := NewContactHandler(mockService, logger)

		msg := &model.ContactMessage{ID: uuid.New(), Name: "Arjun", Email: "arjun@example.com", Message: "Hi"}
		mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.ContactRequest")).Return(msg, nil)

		body := `{"name":"Arjun","email":"arjun@example.com","message":"Hi"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing field", func(t *testing.T) {
		mockService := new(MockContactService)
		h := NewContactHandler(mockService, logger)

		mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.ContactRequest")).
			Return(nil, model.NewDomainError(model.ErrCodeMissingField, "email is required"))

		body := `{"name":"Arjun","message":"Hi"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		mockService := new(MockContactService)
		h := NewContactHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Submit")
	})
}

func TestContactHandler_List(t *testing.T) {
	mockService := new(MockContactService)
	h := NewContactHandler(mockService, zerolog.Nop())

	mockService.On("List", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
