// Package accounts provides SQLite-backed user accounts with per-user
// high scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies; passwords are stored as bcrypt hashes.
package accounts

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the accounts database.
type Store struct {
	db *sql.DB
}

// Entry is one leaderboard row.
type Entry struct {
	Username  string
	HighScore int
	CreatedAt time.Time
}

// Open creates or opens the accounts database at the given path, creating
// parent directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("accounts: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("accounts: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("accounts: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("accounts: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("accounts: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_accounts_top ON accounts(high_score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Create registers a new account. Returns false with a nil error when the
// username is already taken.
func (s *Store) Create(username, password string) (bool, error) {
	if username == "" {
		return false, errors.New("accounts: username is required")
	}
	if password == "" {
		return false, errors.New("accounts: password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("accounts: cannot hash password: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO accounts (username, password_hash) VALUES (?, ?) ON CONFLICT(username) DO NOTHING",
		username, string(hash),
	)
	if err != nil {
		return false, fmt.Errorf("accounts: cannot create account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("accounts: cannot confirm insert: %w", err)
	}
	return n == 1, nil
}

// Verify checks a username/password pair. Unknown usernames and wrong
// passwords both return false with a nil error.
func (s *Store) Verify(username, password string) (bool, error) {
	var hash string
	err := s.db.QueryRow(
		"SELECT password_hash FROM accounts WHERE username = ?",
		username,
	).Scan(&hash)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("accounts: cannot query account: %w", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// HighScore returns the stored high score for a user. Unknown users and
// malformed score values yield 0.
func (s *Store) HighScore(username string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT high_score FROM accounts WHERE username = ?",
		username,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("accounts: cannot query high score: %w", err)
	}

	if !score.Valid || score.Int64 < 0 {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SetHighScore persists a new high score for a user. The write only lands
// when the score exceeds the stored value; lower scores are a no-op.
func (s *Store) SetHighScore(username string, score int) error {
	_, err := s.db.Exec(
		"UPDATE accounts SET high_score = ? WHERE username = ? AND high_score < ?",
		score, username, score,
	)
	if err != nil {
		return fmt.Errorf("accounts: cannot save high score: %w", err)
	}
	return nil
}

// Leaderboard returns the top users ordered by high score descending.
func (s *Store) Leaderboard(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT username, high_score, created_at
		 FROM accounts
		 WHERE high_score > 0
		 ORDER BY high_score DESC, username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("accounts: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.Username, &e.HighScore, &createdAt); err != nil {
			return nil, fmt.Errorf("accounts: cannot scan row: %w", err)
		}

		// The driver may hand back time.Time or a string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accounts: row iteration error: %w", err)
	}

	return entries, nil
}
