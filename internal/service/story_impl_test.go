package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fragmented-narratives/internal/interfaces/mocks"
	"fragmented-narratives/internal/models"
)

func TestStoryService_CreateStory(t *testing.T) {
	t.Run("commits story, founding contribution and participant", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery(`INSERT INTO stories`).
			WithArgs("a broken compass", int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_complete", "created_at"}).
				AddRow(int64(42), false, time.Now()))
		pool.ExpectQuery(`INSERT INTO contributions`).
			WithArgs(int64(42), int64(5), "It pointed nowhere in particular.", 1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(1), time.Now()))
		pool.ExpectQuery(`INSERT INTO story_participants`).
			WithArgs(int64(42), int64(5), 1).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		pool.ExpectCommit()

		svc := NewStoryService(pool, nil, nil, nil, zap.NewNop())
		story, err := svc.CreateStory(context.Background(), 5, "a broken compass", "It pointed nowhere in particular.")
		require.NoError(t, err)
		assert.Equal(t, int64(42), story.ID)
		assert.Equal(t, int64(5), story.CreatorID)
		assert.False(t, story.IsComplete)

		assert.NoError(t, pool.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("rolls back when a dependent insert fails", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery(`INSERT INTO stories`).
			WithArgs("a broken compass", int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_complete", "created_at"}).
				AddRow(int64(42), false, time.Now()))
		pool.ExpectQuery(`INSERT INTO contributions`).
			WithArgs(int64(42), int64(5), "It pointed nowhere in particular.", 1).
			WillReturnError(errors.New("connection refused"))
		pool.ExpectRollback()

		svc := NewStoryService(pool, nil, nil, nil, zap.NewNop())
		story, err := svc.CreateStory(context.Background(), 5, "a broken compass", "It pointed nowhere in particular.")
		assert.ErrorIs(t, err, models.ErrInternalServer)
		assert.Nil(t, story)

		assert.NoError(t, pool.ExpectationsWereMet(), "rollback expectation not met")
	})

	t.Run("rolls back when begin succeeds but story insert fails", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery(`INSERT INTO stories`).
			WithArgs("a broken compass", int64(5)).
			WillReturnError(errors.New("connection refused"))
		pool.ExpectRollback()

		svc := NewStoryService(pool, nil, nil, nil, zap.NewNop())
		_, err = svc.CreateStory(context.Background(), 5, "a broken compass", "It pointed nowhere in particular.")
		assert.ErrorIs(t, err, models.ErrInternalServer)

		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("empty object or sentence never opens a transaction", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		svc := NewStoryService(pool, nil, nil, nil, zap.NewNop())

		_, err = svc.CreateStory(context.Background(), 5, "", "It pointed nowhere.")
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = svc.CreateStory(context.Background(), 5, "a broken compass", "   ")
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestStoryService_GetStory(t *testing.T) {
	t.Run("returns story with ordered contributions", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(nil, storyRepo, nil, nil, zap.NewNop())

		details := &models.StoryDetails{
			Story:           models.Story{ID: 42, Object: "a broken compass", CreatorID: 5},
			CreatorUsername: "alice",
		}
		contributions := []models.Contribution{
			{ID: 1, StoryID: 42, OrderNum: 1, SentenceText: "First.", Username: "alice"},
			{ID: 2, StoryID: 42, OrderNum: 2, SentenceText: "Second.", Username: "bob"},
		}
		storyRepo.On("GetStoryByID", mock.Anything, int64(42)).Return(details, nil).Once()
		storyRepo.On("ListContributions", mock.Anything, int64(42)).Return(contributions, nil).Once()

		gotStory, gotContributions, err := svc.GetStory(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "alice", gotStory.CreatorUsername)
		require.Len(t, gotContributions, 2)
		assert.Equal(t, 1, gotContributions[0].OrderNum)
		assert.Equal(t, 2, gotContributions[1].OrderNum)

		storyRepo.AssertExpectations(t)
	})

	t.Run("absent story yields ErrStoryNotFound", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(nil, storyRepo, nil, nil, zap.NewNop())

		storyRepo.On("GetStoryByID", mock.Anything, int64(999)).
			Return(nil, models.ErrStoryNotFound).Once()

		_, _, err := svc.GetStory(context.Background(), 999)
		assert.ErrorIs(t, err, models.ErrStoryNotFound)

		storyRepo.AssertNotCalled(t, "ListContributions")
	})

	t.Run("contribution query failure maps to internal error", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(nil, storyRepo, nil, nil, zap.NewNop())

		details := &models.StoryDetails{Story: models.Story{ID: 42}}
		storyRepo.On("GetStoryByID", mock.Anything, int64(42)).Return(details, nil).Once()
		storyRepo.On("ListContributions", mock.Anything, int64(42)).
			Return(nil, errors.New("connection refused")).Once()

		_, _, err := svc.GetStory(context.Background(), 42)
		assert.ErrorIs(t, err, models.ErrInternalServer)
	})
}

func TestStoryService_ListAvailableStories(t *testing.T) {
	storyRepo := new(mocks.StoryRepository)
	svc := NewStoryService(nil, storyRepo, nil, nil, zap.NewNop())

	summaries := []models.StorySummary{
		{Story: models.Story{ID: 2}, CreatorUsername: "alice", ContributionCount: 4},
		{Story: models.Story{ID: 1}, CreatorUsername: "bob", ContributionCount: 1},
	}
	storyRepo.On("ListAvailableByParticipant", mock.Anything, int64(5)).
		Return(summaries, nil).Once()

	got, err := svc.ListAvailableStories(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)

	storyRepo.AssertExpectations(t)
}

func TestStoryService_ListHistory(t *testing.T) {
	storyRepo := new(mocks.StoryRepository)
	svc := NewStoryService(nil, storyRepo, nil, nil, zap.NewNop())

	storyRepo.On("ListCompletedByUser", mock.Anything, int64(5)).
		Return(nil, errors.New("connection refused")).Once()

	_, err := svc.ListHistory(context.Background(), 5)
	assert.ErrorIs(t, err, models.ErrInternalServer)
}

func TestStoryService_ListUsers(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := NewStoryService(nil, nil, userRepo, nil, zap.NewNop())

	users := []models.UserInfo{{ID: 2, Username: "alice"}, {ID: 1, Username: "bob"}}
	userRepo.On("ListUsers", mock.Anything).Return(users, nil).Once()

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestStoryService_RandomOpeningSentence(t *testing.T) {
	t.Run("returns pool entry", func(t *testing.T) {
		sentenceRepo := new(mocks.OpeningSentenceRepository)
		svc := NewStoryService(nil, nil, nil, sentenceRepo, zap.NewNop())

		sentence := &models.OpeningSentence{ID: 4, SentenceText: "A warning was issued without any details."}
		sentenceRepo.On("GetRandom", mock.Anything).Return(sentence, nil).Once()

		got, err := svc.RandomOpeningSentence(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sentence, got)
	})

	t.Run("empty pool surfaces ErrNoOpeningSentences", func(t *testing.T) {
		sentenceRepo := new(mocks.OpeningSentenceRepository)
		svc := NewStoryService(nil, nil, nil, sentenceRepo, zap.NewNop())

		sentenceRepo.On("GetRandom", mock.Anything).
			Return(nil, models.ErrNoOpeningSentences).Once()

		_, err := svc.RandomOpeningSentence(context.Background())
		assert.ErrorIs(t, err, models.ErrNoOpeningSentences)
	})
}
