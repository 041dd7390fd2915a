package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waypost/waypost/internal/model"
	"github.com/waypost/waypost/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// migrations is an ordered list of SQL migrations.
// Each migration runs exactly once, tracked by schema_version table.
var migrations = []string{
	// Migration 1: Initial schema
	`
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_on INTEGER NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS stories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	story TEXT NOT NULL,
	visited_locations TEXT,
	is_favorite INTEGER NOT NULL DEFAULT 0,
	user_id INTEGER NOT NULL,
	created_on INTEGER NOT NULL,
	image_url TEXT NOT NULL,
	visited_date INTEGER NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_stories_user_id ON stories(user_id);
CREATE INDEX IF NOT EXISTS idx_stories_visited_date ON stories(user_id, visited_date);
`,
	// Future migrations go here:
	// Migration 2: `ALTER TABLE ...`,
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return err
	}

	var currentVersion int
	row := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err := row.Scan(&currentVersion); err != nil {
		return err
	}

	for i := currentVersion; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}

	return nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO users (full_name, email, password_hash, created_on)
VALUES (?, ?, ?, ?)
`, user.FullName, user.Email, user.PasswordHash, user.CreatedOn.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrDuplicateEmail
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetUser(ctx context.Context, id int64) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, full_name, email, password_hash, created_on
FROM users
WHERE id = ?
`, id)
	return scanUser(row)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, full_name, email, password_hash, created_on
FROM users
WHERE email = ?
`, email)
	return scanUser(row)
}

func (s *Store) CreateStory(ctx context.Context, story *model.Story) (int64, error) {
	locations, err := json.Marshal(story.VisitedLocations)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO stories (title, story, visited_locations, is_favorite, user_id, created_on, image_url, visited_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, story.Title, story.Story, string(locations), boolToInt(story.IsFavorite), story.UserID, story.CreatedOn.Unix(), story.ImageURL, story.VisitedDate.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetStory(ctx context.Context, id, userID int64) (model.Story, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, title, story, visited_locations, is_favorite, user_id, created_on, image_url, visited_date
FROM stories
WHERE id = ? AND user_id = ?
LIMIT 1
`, id, userID)
	return scanStory(row)
}

func (s *Store) ListStories(ctx context.Context, userID int64) ([]model.Story, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, story, visited_locations, is_favorite, user_id, created_on, image_url, visited_date
FROM stories
WHERE user_id = ?
ORDER BY is_favorite DESC, created_on DESC
`, userID)
	if err != nil {
		return nil, err
	}
	return collectStories(rows)
}

func (s *Store) UpdateStory(ctx context.Context, story *model.Story) error {
	locations, err := json.Marshal(story.VisitedLocations)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE stories
SET title = ?, story = ?, visited_locations = ?, is_favorite = ?, image_url = ?, visited_date = ?
WHERE id = ? AND user_id = ?
`, story.Title, story.Story, string(locations), boolToInt(story.IsFavorite), story.ImageURL, story.VisitedDate.Unix(), story.ID, story.UserID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetStoryFavorite(ctx context.Context, id, userID int64, isFavorite bool) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE stories SET is_favorite = ? WHERE id = ? AND user_id = ?
`, boolToInt(isFavorite), id, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteStory(ctx context.Context, id, userID int64) (model.Story, error) {
	story, err := s.GetStory(ctx, id, userID)
	if err != nil {
		return model.Story{}, err
	}
	res, err := s.db.ExecContext(ctx, `
DELETE FROM stories WHERE id = ? AND user_id = ?
`, id, userID)
	if err != nil {
		return model.Story{}, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return model.Story{}, store.ErrNotFound
	}
	return story, nil
}

func (s *Store) SearchStories(ctx context.Context, userID int64, query string) ([]model.Story, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, story, visited_locations, is_favorite, user_id, created_on, image_url, visited_date
FROM stories
WHERE user_id = ? AND (instr(lower(title), lower(?)) > 0 OR instr(lower(story), lower(?)) > 0)
ORDER BY is_favorite DESC, created_on DESC
`, userID, query, query)
	if err != nil {
		return nil, err
	}
	return collectStories(rows)
}

func (s *Store) FilterStoriesByDate(ctx context.Context, userID int64, start, end time.Time) ([]model.Story, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, story, visited_locations, is_favorite, user_id, created_on, image_url, visited_date
FROM stories
WHERE user_id = ? AND visited_date >= ? AND visited_date <= ?
ORDER BY is_favorite DESC, created_on DESC
`, userID, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	return collectStories(rows)
}

func collectStories(rows *sql.Rows) ([]model.Story, error) {
	defer rows.Close()
	stories := []model.Story{}
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var created int64
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, store.ErrNotFound
		}
		return model.User{}, err
	}
	u.CreatedOn = time.Unix(created, 0)
	return u, nil
}

func scanStory(scanner interface{ Scan(dest ...any) error }) (model.Story, error) {
	var s model.Story
	var locationsRaw sql.NullString
	var isFavorite int
	var created int64
	var visited int64
	if err := scanner.Scan(&s.ID, &s.Title, &s.Story, &locationsRaw, &isFavorite, &s.UserID, &created, &s.ImageURL, &visited); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Story{}, store.ErrNotFound
		}
		return model.Story{}, err
	}
	if locationsRaw.Valid && locationsRaw.String != "" {
		_ = json.Unmarshal([]byte(locationsRaw.String), &s.VisitedLocations)
	}
	s.IsFavorite = isFavorite == 1
	s.CreatedOn = time.Unix(created, 0)
	s.VisitedDate = time.Unix(visited, 0)
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY")
}
