package services_test

import (
	"context"

	"botaniq/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockGardenRepository is a mock implementation of repositories.GardenRepository
type MockGardenRepository struct {
	mock.Mock
}

func (m *MockGardenRepository) GetAll(ctx context.Context) ([]models.GardenEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GardenEntry), args.Error(1)
}

func (m *MockGardenRepository) GetByUserID(ctx context.Context, userID string) ([]models.GardenEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.GardenEntry), args.Error(1)
}

func (m *MockGardenRepository) CreateWithCatalog(ctx context.Context, entry *models.GardenEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGardenRepository) UpdateOwned(ctx context.Context, id, ownerID string, changes models.GardenChanges) error {
	args := m.Called(ctx, id, ownerID, changes)
	return args.Error(0)
}

func (m *MockGardenRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// MockRecommendationRepository is a mock implementation of repositories.RecommendationRepository
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) GetAll(ctx context.Context) ([]models.Recommendation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) CreateWithEnrollment(ctx context.Context, rec *models.Recommendation, entry *models.GardenEntry) error {
	args := m.Called(ctx, rec, entry)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
