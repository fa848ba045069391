package store

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestSaveScheduleAndExactDate(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveSchedule("2025-08-29", "勉強会", "14:00", "プログラミング勉強会")
	if err != nil {
		t.Fatalf("failed to save schedule: %v", err)
	}

	s.SaveSchedule("2025-08-30", "other", "", "")

	entries, err := s.Schedules(ScheduleQuery{Date: "2025-08-29"})
	if err != nil {
		t.Fatalf("failed to query schedules: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.ID != id || e.Title != "勉強会" || e.Time != "14:00" || e.Description != "プログラミング勉強会" {
		t.Errorf("schedule round trip mismatch: %+v", e)
	}

	if e.Completed {
		t.Error("new entries must not be completed")
	}
}

func TestSchedulesMonthFilter(t *testing.T) {
	s := openTestStore(t)

	s.SaveSchedule("2025-08-15", "mid august", "10:00", "")
	s.SaveSchedule("2025-08-02", "early august", "09:00", "")
	s.SaveSchedule("2025-09-01", "september", "", "")

	entries, err := s.Schedules(ScheduleQuery{Month: "2025-08"})
	if err != nil {
		t.Fatalf("failed to query schedules: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for 2025-08, got %d", len(entries))
	}

	// ordered by date then time
	if entries[0].Title != "early august" || entries[1].Title != "mid august" {
		t.Errorf("month query not ordered by date: %+v", entries)
	}

	for _, e := range entries {
		if e.Date[:7] != "2025-08" {
			t.Errorf("entry outside month filter: %s", e.Date)
		}
	}
}

func TestSchedulesDefaultUpcoming(t *testing.T) {
	s := openTestStore(t)

	s.SaveSchedule("2000-01-01", "long past", "", "")
	s.SaveSchedule("9999-01-02", "far future", "", "")

	entries, err := s.Schedules(ScheduleQuery{})
	if err != nil {
		t.Fatalf("failed to query schedules: %v", err)
	}

	if len(entries) != 1 || entries[0].Title != "far future" {
		t.Errorf("expected only upcoming entries, got %+v", entries)
	}
}

func TestUpdateSchedulePartial(t *testing.T) {
	s := openTestStore(t)

	id, _ := s.SaveSchedule("2025-08-29", "meeting", "14:00", "")

	err := s.UpdateSchedule(id, SchedulePatch{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("failed to update schedule: %v", err)
	}

	entries, _ := s.Schedules(ScheduleQuery{Date: "2025-08-29"})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if !entries[0].Completed {
		t.Error("expected entry to be completed")
	}

	// other fields untouched
	if entries[0].Title != "meeting" || entries[0].Time != "14:00" {
		t.Errorf("unspecified fields changed: %+v", entries[0])
	}
}

func TestUpdateScheduleEmptyPatch(t *testing.T) {
	s := openTestStore(t)

	id, _ := s.SaveSchedule("2025-08-29", "meeting", "", "")

	if err := s.UpdateSchedule(id, SchedulePatch{}); err != nil {
		t.Fatalf("empty patch must be a no-op, got error: %v", err)
	}
}

func TestDeleteScheduleIdempotent(t *testing.T) {
	s := openTestStore(t)

	id, _ := s.SaveSchedule("2025-08-29", "meeting", "", "")

	if err := s.DeleteSchedule(id); err != nil {
		t.Fatalf("failed to delete schedule: %v", err)
	}

	if err := s.DeleteSchedule(id); err != nil {
		t.Errorf("deleting nonexistent schedule must not error: %v", err)
	}
}
