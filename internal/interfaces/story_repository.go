package interfaces

import (
	"context"

	"fragmented-narratives/internal/models"
)

// StoryRepository defines the persistence contract for stories, their
// contributions and their participants. Implementations are constructed
// over a DBTX so the same code runs against the pool or a transaction.
type StoryRepository interface {
	// CreateStory inserts a story and fills in the generated ID.
	CreateStory(ctx context.Context, story *models.Story) error

	// AddContribution appends one sentence and fills in the generated ID.
	AddContribution(ctx context.Context, contribution *models.Contribution) error

	// AddParticipant enrolls a user into a story's rotation.
	AddParticipant(ctx context.Context, participant *models.Participant) error

	// GetStoryByID returns models.ErrStoryNotFound when absent.
	GetStoryByID(ctx context.Context, id int64) (*models.StoryDetails, error)

	// ListContributions returns a story's sentences in ascending
	// order_num order, each annotated with the author's username.
	ListContributions(ctx context.Context, storyID int64) ([]models.Contribution, error)

	// ListAvailableByParticipant returns incomplete stories the user
	// participates in, newest first.
	ListAvailableByParticipant(ctx context.Context, userID int64) ([]models.StorySummary, error)

	// ListCompletedByUser returns completed stories the user created or
	// contributed to, newest first.
	ListCompletedByUser(ctx context.Context, userID int64) ([]models.StorySummary, error)
}

// OpeningSentenceRepository serves the fixed pool of story openers.
type OpeningSentenceRepository interface {
	// GetRandom returns one uniformly random pool entry, or
	// models.ErrNoOpeningSentences when the pool is empty.
	GetRandom(ctx context.Context) (*models.OpeningSentence, error)
}
