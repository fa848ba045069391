package store

import "fmt"

// Stats returns row counts per table.
func (s *Store) Stats() (Stats, error) {
	var stats Stats

	counts := []struct {
		table string
		dest  *int
	}{
		{"conversations", &stats.Conversations},
		{"memos", &stats.Memos},
		{"schedules", &stats.Schedules},
		{"user_profiles", &stats.UserProfiles},
	}

	for _, c := range counts {
		err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest)
		if err != nil {
			return Stats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}

	return stats, nil
}
