package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const upcomingScheduleLimit = 50

// SaveSchedule creates a schedule entry and returns its id. Time and
// description are optional.
func (s *Store) SaveSchedule(date, title, timeOfDay, description string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO schedules (date, time, title, description)
		VALUES (?, ?, ?, ?)`,
		date, nullable(timeOfDay), title, nullable(description))
	if err != nil {
		return 0, fmt.Errorf("save schedule: %w", err)
	}

	id, _ := result.LastInsertId()
	return id, nil
}

// Schedules runs one of the three query modes: exact date, month prefix,
// or upcoming entries from today onward capped at 50.
func (s *Store) Schedules(q ScheduleQuery) ([]Schedule, error) {
	var rows *sql.Rows
	var err error

	switch {
	case q.Date != "":
		rows, err = s.db.Query(`
			SELECT id, date, time, title, description, completed, created_at
			FROM schedules WHERE date = ?
			ORDER BY time ASC, created_at ASC`,
			q.Date)
	case q.Month != "":
		rows, err = s.db.Query(`
			SELECT id, date, time, title, description, completed, created_at
			FROM schedules WHERE date LIKE ?
			ORDER BY date ASC, time ASC`,
			q.Month+"%")
	default:
		rows, err = s.db.Query(`
			SELECT id, date, time, title, description, completed, created_at
			FROM schedules WHERE date >= date('now')
			ORDER BY date ASC, time ASC
			LIMIT ?`,
			upcomingScheduleLimit)
	}

	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}

	defer rows.Close()

	schedules := []Schedule{}

	for rows.Next() {
		var e Schedule
		var timeOfDay, description sql.NullString
		var created string

		if err := rows.Scan(&e.ID, &e.Date, &timeOfDay, &e.Title, &description, &e.Completed, &created); err != nil {
			return nil, err
		}

		e.Time = timeOfDay.String
		e.Description = description.String
		var err error
		if e.CreatedAt, err = time.Parse(sqliteTime, created); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		schedules = append(schedules, e)
	}

	return schedules, rows.Err()
}

// UpdateSchedule applies the non-nil fields of the patch. A patch with no
// fields set is a no-op.
func (s *Store) UpdateSchedule(id int64, patch SchedulePatch) error {
	sets := []string{}
	args := []any{}

	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *patch.Time)
	}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)

	query := "UPDATE schedules SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}

	return nil
}

// DeleteSchedule removes an entry by id. Deleting a nonexistent id is not
// an error.
func (s *Store) DeleteSchedule(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM schedules WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}

	return v
}
