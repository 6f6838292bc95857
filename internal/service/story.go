package service

import (
	"context"

	"fragmented-narratives/internal/models"
)

// StoryService defines the lifecycle operations for collaborative stories.
type StoryService interface {
	// CreateStory creates a story seeded with its founding contribution
	// and enrolls the creator as the first participant, atomically.
	CreateStory(ctx context.Context, creatorID int64, object, sentence string) (*models.Story, error)

	// ListAvailableStories returns the incomplete stories the user
	// participates in, newest first.
	ListAvailableStories(ctx context.Context, userID int64) ([]models.StorySummary, error)

	// GetStory returns a story with its contributions in order.
	GetStory(ctx context.Context, storyID int64) (*models.StoryDetails, []models.Contribution, error)

	// ListHistory returns the completed stories the user created or
	// contributed to, newest first.
	ListHistory(ctx context.Context, userID int64) ([]models.StorySummary, error)

	// ListUsers returns all registered users ordered by username.
	ListUsers(ctx context.Context) ([]models.UserInfo, error)

	// RandomOpeningSentence returns a random entry from the opener pool.
	RandomOpeningSentence(ctx context.Context) (*models.OpeningSentence, error)
}
