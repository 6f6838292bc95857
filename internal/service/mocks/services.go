package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fragmented-narratives/internal/models"
)

// Mock AuthService
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	args := m.Called(ctx, username, password)
	td, _ := args.Get(0).(*models.TokenDetails)
	return td, args.Error(1)
}

func (m *AuthService) VerifyToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	args := m.Called(ctx, tokenString)
	claims, _ := args.Get(0).(*models.Claims)
	return claims, args.Error(1)
}

// Mock StoryService
type StoryService struct {
	mock.Mock
}

func (m *StoryService) CreateStory(ctx context.Context, creatorID int64, object, sentence string) (*models.Story, error) {
	args := m.Called(ctx, creatorID, object, sentence)
	story, _ := args.Get(0).(*models.Story)
	return story, args.Error(1)
}

func (m *StoryService) ListAvailableStories(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	args := m.Called(ctx, userID)
	stories, _ := args.Get(0).([]models.StorySummary)
	return stories, args.Error(1)
}

func (m *StoryService) GetStory(ctx context.Context, storyID int64) (*models.StoryDetails, []models.Contribution, error) {
	args := m.Called(ctx, storyID)
	details, _ := args.Get(0).(*models.StoryDetails)
	contributions, _ := args.Get(1).([]models.Contribution)
	return details, contributions, args.Error(2)
}

func (m *StoryService) ListHistory(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	args := m.Called(ctx, userID)
	stories, _ := args.Get(0).([]models.StorySummary)
	return stories, args.Error(1)
}

func (m *StoryService) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.UserInfo)
	return users, args.Error(1)
}

func (m *StoryService) RandomOpeningSentence(ctx context.Context) (*models.OpeningSentence, error) {
	args := m.Called(ctx)
	sentence, _ := args.Get(0).(*models.OpeningSentence)
	return sentence, args.Error(1)
}
