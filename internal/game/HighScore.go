package game

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const (
	scoresTableName      = "high_scores"
	preferencesTableName = "preferences"
)

type HighScoreService struct {
	db *sql.DB
}

type Score struct {
	ID         int
	SessionID  string
	PlayerName string
	Game       GameKind
	Eaten      int
	Length     int
	Won        bool
	CreatedAt  time.Time
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", dbPath, err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return service, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}

func (serviceImpl *HighScoreService) createTables() error {
	const createScoresSQL = `
	CREATE TABLE IF NOT EXISTS ` + scoresTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		game TEXT NOT NULL,
		eaten INTEGER NOT NULL,
		length INTEGER NOT NULL,
		won BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`

	const createPreferencesSQL = `
	CREATE TABLE IF NOT EXISTS ` + preferencesTableName + ` (
		owner TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (owner, key)
	);`

	for _, stmt := range []string{createScoresSQL, createPreferencesSQL} {
		if _, err := serviceImpl.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
		}
	}
	log.Debug("High score tables ensured.")
	return nil
}

func (serviceImpl *HighScoreService) SaveScore(ctx context.Context, result Result) error {
	const insertSQL = `
	INSERT INTO ` + scoresTableName + ` (session_id, player_name, game, eaten, length, won, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);`

	_, err := serviceImpl.db.ExecContext(ctx, insertSQL,
		result.SessionID,
		result.PlayerName,
		string(result.Game),
		result.Eaten,
		result.Length,
		result.Status == StatusWon,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", result.PlayerName, err)
	}
	return nil
}

// GetHighScores returns a page of scores, best first.
func (serviceImpl *HighScoreService) GetHighScores(ctx context.Context, limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, session_id, player_name, game, eaten, length, won, created_at
	FROM ` + scoresTableName + `
	ORDER BY eaten DESC, length DESC, created_at ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.QueryContext(ctx, selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var score Score
		var game string
		err := rows.Scan(&score.ID, &score.SessionID, &score.PlayerName, &game,
			&score.Eaten, &score.Length, &score.Won, &score.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		score.Game = GameKind(game)
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return scores, nil
}

func (serviceImpl *HighScoreService) GetTotalScoreCount(ctx context.Context) (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + scoresTableName + `;`
	var count int
	if err := serviceImpl.db.QueryRowContext(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

// GetPreference reports false when nothing was stored for owner and key.
func (serviceImpl *HighScoreService) GetPreference(ctx context.Context, owner, key string) (string, bool, error) {
	const selectSQL = `SELECT value FROM ` + preferencesTableName + ` WHERE owner = ? AND key = ?;`

	var value string
	err := serviceImpl.db.QueryRowContext(ctx, selectSQL, owner, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s for %q: %w", key, owner, err)
	}
	return value, true, nil
}

func (serviceImpl *HighScoreService) SetPreference(ctx context.Context, owner, key, value string) error {
	const upsertSQL = `
	INSERT INTO ` + preferencesTableName + ` (owner, key, value) VALUES (?, ?, ?)
	ON CONFLICT(owner, key) DO UPDATE SET value = excluded.value;`

	if _, err := serviceImpl.db.ExecContext(ctx, upsertSQL, owner, key, value); err != nil {
		return fmt.Errorf("failed to store preference %s for %q: %w", key, owner, err)
	}
	return nil
}
