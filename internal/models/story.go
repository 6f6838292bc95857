package models

import "time"

// Story is the collaborative artifact. Title is optional; Object is the
// seed prompt phrase the story grew from. IsComplete gates the story out
// of the "available" listing; nothing currently flips it to true.
type Story struct {
	ID         int64     `json:"id" db:"id"`
	Title      *string   `json:"title" db:"title"`
	Object     string    `json:"object" db:"object"`
	CreatorID  int64     `json:"creator_id" db:"creator_id"`
	IsComplete bool      `json:"is_complete" db:"is_complete"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// StorySummary is a story annotated for list views: who created it and
// how many sentences it has accumulated.
type StorySummary struct {
	Story
	CreatorUsername   string `json:"creator_username" db:"creator_username"`
	ContributionCount int64  `json:"contribution_count" db:"contribution_count"`
}

// StoryDetails is a single story annotated with its creator's name.
type StoryDetails struct {
	Story
	CreatorUsername string `json:"creator_username" db:"creator_username"`
}

// Contribution is one sentence of a story. OrderNum is the sole
// sequencing mechanism; it starts at 1 and is contiguous per story.
type Contribution struct {
	ID           int64     `json:"id" db:"id"`
	StoryID      int64     `json:"story_id" db:"story_id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	SentenceText string    `json:"sentence_text" db:"sentence_text"`
	OrderNum     int       `json:"order_num" db:"order_num"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Username     string    `json:"username" db:"username"`
}

// Participant is a user's membership in a story's turn rotation.
// (story_id, user_id) pairs are unique.
type Participant struct {
	ID        int64 `json:"id" db:"id"`
	StoryID   int64 `json:"story_id" db:"story_id"`
	UserID    int64 `json:"user_id" db:"user_id"`
	TurnOrder int   `json:"turn_order" db:"turn_order"`
}

// OpeningSentence is one entry of the fixed seed pool.
type OpeningSentence struct {
	ID           int64     `json:"id" db:"id"`
	SentenceText string    `json:"sentence_text" db:"sentence_text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
