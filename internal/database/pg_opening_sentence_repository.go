package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fragmented-narratives/internal/interfaces"
	"fragmented-narratives/internal/models"
)

// Compile-time check to ensure pgOpeningSentenceRepository implements OpeningSentenceRepository
var _ interfaces.OpeningSentenceRepository = (*pgOpeningSentenceRepository)(nil)

type pgOpeningSentenceRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgOpeningSentenceRepository creates a new PostgreSQL-backed OpeningSentenceRepository.
func NewPgOpeningSentenceRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.OpeningSentenceRepository {
	return &pgOpeningSentenceRepository{
		db:     db,
		logger: logger.Named("PgOpeningSentenceRepo"),
	}
}

// GetRandom picks one uniformly random entry from the pool.
func (r *pgOpeningSentenceRepository) GetRandom(ctx context.Context) (*models.OpeningSentence, error) {
	query := `SELECT id, sentence_text, created_at FROM opening_sentences ORDER BY RANDOM() LIMIT 1`
	r.logger.Debug("Executing query", zap.String("query", query))

	sentence := &models.OpeningSentence{}
	err := r.db.QueryRow(ctx, query).Scan(&sentence.ID, &sentence.SentenceText, &sentence.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Opening sentence pool is empty")
			return nil, models.ErrNoOpeningSentences
		}
		r.logger.Error("Failed to get random opening sentence from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to get random opening sentence: %w", err)
	}
	return sentence, nil
}
