package service

import (
	"context"
	"errors"
	"testing"

	"chronokart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func TestContactService_Submit(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	valid := func() *model.ContactRequest {
		return &model.ContactRequest{
			Name:    "Arjun Mehta",
			Email:   "arjun@example.com",
			Phone:   "9876543210",
			Subject: "Warranty question",
			Message: "Does the Tissot come with an international warranty?",
		}
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		service := NewContactService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.ContactMessage")).Return(nil)

		msg, err := service.Submit(ctx, valid())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, msg.ID)
		assert.Equal(t, "Arjun Mehta", msg.Name)
		assert.False(t, msg.CreatedAt.IsZero())

		mockRepo.AssertExpectations(t)
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*model.ContactRequest)
		}{
			{"missing name", func(r *model.ContactRequest) { r.Name = "" }},
			{"missing email", func(r *model.ContactRequest) { r.Email = "" }},
			{"missing message", func(r *model.ContactRequest) { r.Message = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := new(MockContactRepository)
				service := NewContactService(mockRepo, logger)

				req := valid()
				tt.mutate(req)

				msg, err := service.Submit(ctx, req)
				require.Error(t, err)
				assert.Nil(t, msg)
				mockRepo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		service := NewContactService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.ContactMessage")).
			Return(errors.New("database error"))

		msg, err := service.Submit(ctx, valid())
		require.Error(t, err)
		assert.Nil(t, msg)
	})
}

func TestContactService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockContactRepository)
	service := NewContactService(mockRepo, logger)

	messages := []model.ContactMessage{
		{ID: uuid.New(), Name: "Arjun Mehta", Email: "arjun@example.com", Message: "Hi"},
	}
	mockRepo.On("List", ctx).Return(messages, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
