package store

import (
	"fmt"
	"strings"
	"time"
)

const defaultMemoLimit = 50

// SaveMemo creates a memo and returns its id. An empty category defaults
// to "general".
func (s *Store) SaveMemo(title, content, category string) (int64, error) {
	if category == "" {
		category = "general"
	}

	result, err := s.db.Exec(`
		INSERT INTO memos (title, content, category)
		VALUES (?, ?, ?)`,
		title, content, category)
	if err != nil {
		return 0, fmt.Errorf("save memo: %w", err)
	}

	id, _ := result.LastInsertId()
	return id, nil
}

// Memos returns memos newest-updated-first, filtered by category when one
// is given. A limit <= 0 falls back to the default of 50.
func (s *Store) Memos(category string, limit int) ([]Memo, error) {
	if limit <= 0 {
		limit = defaultMemoLimit
	}

	query := `
		SELECT id, title, content, category, created_at, updated_at
		FROM memos`
	args := []any{}

	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}

	query += ` ORDER BY updated_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query memos: %w", err)
	}

	defer rows.Close()

	memos := []Memo{}

	for rows.Next() {
		var m Memo
		var created, updated string

		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.Category, &created, &updated); err != nil {
			return nil, err
		}

		var err error
		if m.CreatedAt, err = time.Parse(sqliteTime, created); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		if m.UpdatedAt, err = time.Parse(sqliteTime, updated); err != nil {
			return nil, fmt.Errorf("parse updated_at %q: %w", updated, err)
		}
		memos = append(memos, m)
	}

	return memos, rows.Err()
}

// UpdateMemo applies the non-nil fields of the patch and refreshes
// updated_at. A patch with no fields set is a no-op.
func (s *Store) UpdateMemo(id int64, patch MemoPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = datetime('now')")
	args = append(args, id)

	query := "UPDATE memos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update memo: %w", err)
	}

	return nil
}

// DeleteMemo removes a memo by id. Deleting a nonexistent id is not an error.
func (s *Store) DeleteMemo(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM memos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}

	return nil
}
