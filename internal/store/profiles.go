package store

import (
	"database/sql"
	"fmt"
)

// SaveProfile upserts a profile setting; saving an existing key overwrites
// its value and updated_at.
func (s *Store) SaveProfile(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO user_profiles (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = datetime('now')`,
		key, value)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

// Profile returns the value for a key; ok is false when the key is absent.
func (s *Store) Profile(key string) (string, bool, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM user_profiles WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get profile: %w", err)
	}

	return value, true, nil
}

// AllProfiles returns every profile setting as a key/value map.
func (s *Store) AllProfiles() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM user_profiles`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}

	defer rows.Close()

	profiles := map[string]string{}

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		profiles[key] = value
	}

	return profiles, rows.Err()
}
