package store

import (
	"context"
	"errors"
	"time"

	"github.com/waypost/waypost/internal/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
)

type Store interface {
	UserStore
	StoryStore
	Close() error
}

type UserStore interface {
	// CreateUser inserts a new user. The email column carries a unique
	// index; a duplicate reports ErrDuplicateEmail.
	CreateUser(ctx context.Context, user *model.User) (int64, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// StoryStore operations that take a userID are scoped to that owner: a
// story id belonging to another user behaves as if the row does not exist.
type StoryStore interface {
	CreateStory(ctx context.Context, story *model.Story) (int64, error)
	GetStory(ctx context.Context, id, userID int64) (model.Story, error)
	ListStories(ctx context.Context, userID int64) ([]model.Story, error)
	UpdateStory(ctx context.Context, story *model.Story) error
	SetStoryFavorite(ctx context.Context, id, userID int64, isFavorite bool) error
	// DeleteStory removes the row and returns the deleted record so the
	// caller can clean up the associated image blob.
	DeleteStory(ctx context.Context, id, userID int64) (model.Story, error)
	SearchStories(ctx context.Context, userID int64, query string) ([]model.Story, error)
	FilterStoriesByDate(ctx context.Context, userID int64, start, end time.Time) ([]model.Story, error)
}
