package store

import (
	"database/sql"
	"fmt"
	"time"
)

// SaveTurn appends a conversation turn. The timestamp is assigned by the
// database on insertion.
func (s *Store) SaveTurn(sessionID, role, content string) error {
	_, err := s.db.Exec(`
		INSERT INTO conversations (session_id, role, content)
		VALUES (?, ?, ?)`,
		sessionID, role, content)
	if err != nil {
		return fmt.Errorf("save turn: %w", err)
	}

	return nil
}

// History returns up to limit most recent turns for the session, ordered
// oldest to newest. A session with no turns yields an empty slice.
func (s *Store) History(sessionID string, limit int) ([]Turn, error) {
	rows, err := s.db.Query(`
		SELECT session_id, role, content, timestamp
		FROM conversations
		WHERE session_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	defer rows.Close()

	turns, err := scanTurns(rows)
	if err != nil {
		return nil, err
	}

	// fetched newest-first; reverse into chronological order
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

// RecentTurns returns all turns within the trailing time window, oldest
// to newest.
func (s *Store) RecentTurns(sessionID string, hours int) ([]Turn, error) {
	rows, err := s.db.Query(`
		SELECT session_id, role, content, timestamp
		FROM conversations
		WHERE session_id = ?
		AND datetime(timestamp) > datetime('now', ?)
		ORDER BY timestamp ASC, id ASC`,
		sessionID, fmt.Sprintf("-%d hours", hours))
	if err != nil {
		return nil, fmt.Errorf("query recent turns: %w", err)
	}

	defer rows.Close()

	return scanTurns(rows)
}

// CleanupTurns deletes turns older than the cutoff and reports how many
// rows were removed. Irreversible; meant for periodic maintenance.
func (s *Store) CleanupTurns(days int) (int, error) {
	result, err := s.db.Exec(`
		DELETE FROM conversations
		WHERE datetime(timestamp) < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, fmt.Errorf("cleanup turns: %w", err)
	}

	n, _ := result.RowsAffected()
	return int(n), nil
}

func scanTurns(rows *sql.Rows) ([]Turn, error) {
	turns := []Turn{}

	for rows.Next() {
		var t Turn
		var ts string

		if err := rows.Scan(&t.SessionID, &t.Role, &t.Content, &ts); err != nil {
			return nil, err
		}

		var err error
		if t.Timestamp, err = time.Parse(sqliteTime, ts); err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}
