package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fragmented-narratives/internal/models"
)

// Mock UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.UserInfo)
	return users, args.Error(1)
}

// Mock StoryRepository
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) CreateStory(ctx context.Context, story *models.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *StoryRepository) AddContribution(ctx context.Context, contribution *models.Contribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *StoryRepository) AddParticipant(ctx context.Context, participant *models.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *StoryRepository) GetStoryByID(ctx context.Context, id int64) (*models.StoryDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*models.StoryDetails)
	return details, args.Error(1)
}

func (m *StoryRepository) ListContributions(ctx context.Context, storyID int64) ([]models.Contribution, error) {
	args := m.Called(ctx, storyID)
	contributions, _ := args.Get(0).([]models.Contribution)
	return contributions, args.Error(1)
}

func (m *StoryRepository) ListAvailableByParticipant(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	args := m.Called(ctx, userID)
	stories, _ := args.Get(0).([]models.StorySummary)
	return stories, args.Error(1)
}

func (m *StoryRepository) ListCompletedByUser(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	args := m.Called(ctx, userID)
	stories, _ := args.Get(0).([]models.StorySummary)
	return stories, args.Error(1)
}

// Mock OpeningSentenceRepository
type OpeningSentenceRepository struct {
	mock.Mock
}

func (m *OpeningSentenceRepository) GetRandom(ctx context.Context) (*models.OpeningSentence, error) {
	args := m.Called(ctx)
	sentence, _ := args.Get(0).(*models.OpeningSentence)
	return sentence, args.Error(1)
}
