package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fragmented-narratives/internal/interfaces"
	"fragmented-narratives/internal/models"
)

const (
	listAvailableStoriesQuery = `
		SELECT s.id, s.title, s.object, s.creator_id, s.is_complete, s.created_at,
		       u.username AS creator_username,
		       COUNT(c.id) AS contribution_count
		FROM stories s
		JOIN users u ON u.id = s.creator_id
		JOIN story_participants sp ON sp.story_id = s.id
		LEFT JOIN contributions c ON c.story_id = s.id
		WHERE sp.user_id = $1 AND s.is_complete = FALSE
		GROUP BY s.id, u.username
		ORDER BY s.created_at DESC`

	listCompletedStoriesQuery = `
		SELECT DISTINCT s.id, s.title, s.object, s.creator_id, s.is_complete, s.created_at,
		       u.username AS creator_username,
		       COUNT(c.id) AS contribution_count
		FROM stories s
		JOIN users u ON u.id = s.creator_id
		JOIN contributions c ON c.story_id = s.id
		WHERE s.is_complete = TRUE AND (s.creator_id = $1 OR c.user_id = $1)
		GROUP BY s.id, u.username
		ORDER BY s.created_at DESC`

	listContributionsQuery = `
		SELECT c.id, c.story_id, c.user_id, c.sentence_text, c.order_num, c.created_at,
		       u.username
		FROM contributions c
		JOIN users u ON u.id = c.user_id
		WHERE c.story_id = $1
		ORDER BY c.order_num ASC`

	getStoryByIDQuery = `
		SELECT s.id, s.title, s.object, s.creator_id, s.is_complete, s.created_at,
		       u.username AS creator_username
		FROM stories s
		JOIN users u ON u.id = s.creator_id
		WHERE s.id = $1`
)

// Compile-time check to ensure pgStoryRepository implements StoryRepository
var _ interfaces.StoryRepository = (*pgStoryRepository)(nil)

type pgStoryRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgStoryRepository creates a new PostgreSQL-backed StoryRepository.
// Pass a pgx.Tx as db to get a transaction-scoped instance.
func NewPgStoryRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

// CreateStory inserts a new story row.
func (r *pgStoryRepository) CreateStory(ctx context.Context, story *models.Story) error {
	query := `INSERT INTO stories (object, creator_id) VALUES ($1, $2) RETURNING id, is_complete, created_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int64("creatorID", story.CreatorID))
	err := r.db.QueryRow(ctx, query, story.Object, story.CreatorID).
		Scan(&story.ID, &story.IsComplete, &story.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create story in postgres", zap.Error(err), zap.Int64("creatorID", story.CreatorID))
		return fmt.Errorf("failed to create story in postgres: %w", err)
	}
	r.logger.Info("Story created successfully", zap.Int64("storyID", story.ID), zap.Int64("creatorID", story.CreatorID))
	return nil
}

// AddContribution appends one sentence to a story.
func (r *pgStoryRepository) AddContribution(ctx context.Context, contribution *models.Contribution) error {
	query := `INSERT INTO contributions (story_id, user_id, sentence_text, order_num) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int64("storyID", contribution.StoryID), zap.Int("orderNum", contribution.OrderNum))
	err := r.db.QueryRow(ctx, query, contribution.StoryID, contribution.UserID, contribution.SentenceText, contribution.OrderNum).
		Scan(&contribution.ID, &contribution.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to add contribution in postgres", zap.Error(err), zap.Int64("storyID", contribution.StoryID))
		return fmt.Errorf("failed to add contribution in postgres: %w", err)
	}
	return nil
}

// AddParticipant enrolls a user into a story's rotation.
func (r *pgStoryRepository) AddParticipant(ctx context.Context, participant *models.Participant) error {
	query := `INSERT INTO story_participants (story_id, user_id, turn_order) VALUES ($1, $2, $3) RETURNING id`
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int64("storyID", participant.StoryID), zap.Int64("userID", participant.UserID))
	err := r.db.QueryRow(ctx, query, participant.StoryID, participant.UserID, participant.TurnOrder).
		Scan(&participant.ID)
	if err != nil {
		r.logger.Error("Failed to add participant in postgres", zap.Error(err), zap.Int64("storyID", participant.StoryID))
		return fmt.Errorf("failed to add participant in postgres: %w", err)
	}
	return nil
}

// GetStoryByID retrieves one story annotated with the creator's username.
func (r *pgStoryRepository) GetStoryByID(ctx context.Context, id int64) (*models.StoryDetails, error) {
	r.logger.Debug("Executing query", zap.String("query", getStoryByIDQuery), zap.Int64("storyID", id))
	var story models.StoryDetails
	err := pgxscan.Get(ctx, r.db, &story, getStoryByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found by ID", zap.Int64("storyID", id))
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Failed to get story by id from postgres", zap.Error(err), zap.Int64("storyID", id))
		return nil, fmt.Errorf("failed to get story by id from postgres: %w", err)
	}
	return &story, nil
}

// ListContributions returns a story's sentences in ascending sequence order.
func (r *pgStoryRepository) ListContributions(ctx context.Context, storyID int64) ([]models.Contribution, error) {
	r.logger.Debug("Executing query", zap.String("query", listContributionsQuery), zap.Int64("storyID", storyID))
	contributions := make([]models.Contribution, 0)
	if err := pgxscan.Select(ctx, r.db, &contributions, listContributionsQuery, storyID); err != nil {
		r.logger.Error("Failed to query contributions from postgres", zap.Error(err), zap.Int64("storyID", storyID))
		return nil, fmt.Errorf("failed to query contributions: %w", err)
	}
	return contributions, nil
}

// ListAvailableByParticipant returns incomplete stories the user participates in.
func (r *pgStoryRepository) ListAvailableByParticipant(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	r.logger.Debug("Executing query", zap.String("query", listAvailableStoriesQuery), zap.Int64("userID", userID))
	stories := make([]models.StorySummary, 0)
	if err := pgxscan.Select(ctx, r.db, &stories, listAvailableStoriesQuery, userID); err != nil {
		r.logger.Error("Failed to query available stories from postgres", zap.Error(err), zap.Int64("userID", userID))
		return nil, fmt.Errorf("failed to query available stories: %w", err)
	}
	return stories, nil
}

// ListCompletedByUser returns completed stories the user created or contributed to.
func (r *pgStoryRepository) ListCompletedByUser(ctx context.Context, userID int64) ([]models.StorySummary, error) {
	r.logger.Debug("Executing query", zap.String("query", listCompletedStoriesQuery), zap.Int64("userID", userID))
	stories := make([]models.StorySummary, 0)
	if err := pgxscan.Select(ctx, r.db, &stories, listCompletedStoriesQuery, userID); err != nil {
		r.logger.Error("Failed to query story history from postgres", zap.Error(err), zap.Int64("userID", userID))
		return nil, fmt.Errorf("failed to query story history: %w", err)
	}
	return stories, nil
}
