package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fragmented-narratives/internal/database"
	"fragmented-narratives/internal/interfaces"
	"fragmented-narratives/internal/models"
)

// Compile-time check to ensure storyServiceImpl implements StoryService
var _ StoryService = (*storyServiceImpl)(nil)

// storyServiceImpl implements the StoryService interface.
type storyServiceImpl struct {
	pool         interfaces.PgxPool
	storyRepo    interfaces.StoryRepository
	userRepo     interfaces.UserRepository
	sentenceRepo interfaces.OpeningSentenceRepository
	logger       *zap.Logger
}

// NewStoryService creates a new instance of storyServiceImpl. The pool is
// used to open transactions; the repositories passed in are pool-scoped.
func NewStoryService(
	pool interfaces.PgxPool,
	storyRepo interfaces.StoryRepository,
	userRepo interfaces.UserRepository,
	sentenceRepo interfaces.OpeningSentenceRepository,
	logger *zap.Logger,
) StoryService {
	return &storyServiceImpl{
		pool:         pool,
		storyRepo:    storyRepo,
		userRepo:     userRepo,
		sentenceRepo: sentenceRepo,
		logger:       logger.Named("StoryService"),
	}
}

// CreateStory inserts the story, its founding contribution and the creator's
// participant row in a single transaction.
func (s *storyServiceImpl) CreateStory(ctx context.Context, creatorID int64, object, sentence string) (*models.Story, error) {
	object = strings.TrimSpace(object)
	sentence = strings.TrimSpace(sentence)
	if object == "" || sentence == "" {
		s.logger.Warn("CreateStory attempt with empty object or sentence", zap.Int64("creatorID", creatorID))
		return nil, models.ErrInvalidInput
	}

	log := s.logger.With(zap.Int64("creatorID", creatorID), zap.String("object", object))
	log.Info("Creating story")

	story := &models.Story{
		Object:    object,
		CreatorID: creatorID,
	}

	err := WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		storyRepoTx := database.NewPgStoryRepository(tx, s.logger)

		if err := storyRepoTx.CreateStory(ctx, story); err != nil {
			return fmt.Errorf("failed to insert story: %w", err)
		}

		contribution := &models.Contribution{
			StoryID:      story.ID,
			UserID:       creatorID,
			SentenceText: sentence,
			OrderNum:     1,
		}
		if err := storyRepoTx.AddContribution(ctx, contribution); err != nil {
			return fmt.Errorf("failed to insert founding contribution: %w", err)
		}

		participant := &models.Participant{
			StoryID:   story.ID,
			UserID:    creatorID,
			TurnOrder: 1,
		}
		if err := storyRepoTx.AddParticipant(ctx, participant); err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error("CreateStory transaction failed", zap.Error(err))
		return nil, models.ErrInternalServer
	}

	log.Info("Story created", zap.Int64("storyID", story.ID))
	return story, nil
}

// ListAvailableStories returns incomplete stories the user participates in.
func (s *storyServiceImpl) ListAvailableStories(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	stories, err := s.storyRepo.ListAvailableByParticipant(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list available stories", zap.Int64("userID", userID), zap.Error(err))
		return nil, models.ErrInternalServer
	}
	return stories, nil
}

// GetStory returns the story with its contributions in order.
func (s *storyServiceImpl) GetStory(ctx context.Context, storyID int64) (*models.StoryDetails, []models.Contribution, error) {
	details, err := s.storyRepo.GetStoryByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, models.ErrStoryNotFound) {
			s.logger.Warn("Story not found", zap.Int64("storyID", storyID))
			return nil, nil, models.ErrStoryNotFound
		}
		s.logger.Error("Failed to get story", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, nil, models.ErrInternalServer
	}

	contributions, err := s.storyRepo.ListContributions(ctx, storyID)
	if err != nil {
		s.logger.Error("Failed to list contributions", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, nil, models.ErrInternalServer
	}

	return details, contributions, nil
}

// ListHistory returns completed stories the user created or contributed to.
func (s *storyServiceImpl) ListHistory(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	stories, err := s.storyRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list story history", zap.Int64("userID", userID), zap.Error(err))
		return nil, models.ErrInternalServer
	}
	return stories, nil
}

// ListUsers returns all registered users.
func (s *storyServiceImpl) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, models.ErrInternalServer
	}
	return users, nil
}

// RandomOpeningSentence returns a random entry from the opener pool.
func (s *storyServiceImpl) RandomOpeningSentence(ctx context.Context) (*models.OpeningSentence, error) {
	sentence, err := s.sentenceRepo.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNoOpeningSentences) {
			s.logger.Warn("Opening sentence pool is empty")
			return nil, models.ErrNoOpeningSentences
		}
		s.logger.Error("Failed to get random opening sentence", zap.Error(err))
		return nil, models.ErrInternalServer
	}
	return sentence, nil
}
