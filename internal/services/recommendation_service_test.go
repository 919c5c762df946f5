package services_test

import (
	"context"
	"errors"
	"testing"

	"botaniq/internal/models"
	"botaniq/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_CreateRecommendation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRecommendationRepository)
	events := new(MockEventPublisher)
	recService := services.NewRecommendationService(mockRepo, events)

	rec := &models.Recommendation{ID: "client-chosen", Latin: "Monstera deliciosa", Family: "Araceae"}
	mockRepo.On("CreateWithEnrollment", ctx, rec, mock.MatchedBy(func(e *models.GardenEntry) bool {
		return e.UserID == owner.ID && e.Family == "Araceae"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Recommendation).ID = "rec-1"
		args.Get(2).(*models.GardenEntry).ID = "entry-1"
	}).Return(nil).Once()
	events.On("Publish", models.EventRecommendationCreated, eventOfType(models.EventRecommendationCreated, "rec-1")).Return(nil).Once()
	events.On("Publish", models.EventGardenCreated, eventOfType(models.EventGardenCreated, "entry-1")).Return(nil).Once()

	entry, err := recService.CreateRecommendation(ctx, owner, rec)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, owner.ID, entry.UserID)
	mockRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestRecommendationService_CreateRecommendationFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRecommendationRepository)
	events := new(MockEventPublisher)
	recService := services.NewRecommendationService(mockRepo, events)

	mockRepo.On("CreateWithEnrollment", ctx, mock.Anything, mock.Anything).Return(errors.New("rolled back")).Once()

	entry, err := recService.CreateRecommendation(ctx, owner, &models.Recommendation{Family: "Araceae"})
	assert.Error(t, err)
	assert.Nil(t, entry)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRecommendationService_GetAllRecommendations(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRecommendationRepository)
	recService := services.NewRecommendationService(mockRepo, nil)

	recs := []models.Recommendation{{ID: "rec-1", Family: "Araceae"}}
	mockRepo.On("GetAll", ctx).Return(recs, nil).Once()

	got, err := recService.GetAllRecommendations(ctx)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}
