package store

import "testing"

func TestSaveProfileUpsert(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveProfile("name", "御坂"); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	// saving the same key again overwrites
	if err := s.SaveProfile("name", "美琴"); err != nil {
		t.Fatalf("failed to upsert profile: %v", err)
	}

	value, ok, err := s.Profile("name")
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}

	if !ok || value != "美琴" {
		t.Errorf("expected upserted value 美琴, got %q (ok=%v)", value, ok)
	}
}

func TestProfileAbsentKey(t *testing.T) {
	s := openTestStore(t)

	value, ok, err := s.Profile("missing")
	if err != nil {
		t.Fatalf("absent key must not error: %v", err)
	}

	if ok || value != "" {
		t.Errorf("expected absent key, got %q (ok=%v)", value, ok)
	}
}

func TestAllProfiles(t *testing.T) {
	s := openTestStore(t)

	s.SaveProfile("name", "御坂")
	s.SaveProfile("hobby", "ゲコ太集め")

	profiles, err := s.AllProfiles()
	if err != nil {
		t.Fatalf("failed to get all profiles: %v", err)
	}

	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	if profiles["name"] != "御坂" || profiles["hobby"] != "ゲコ太集め" {
		t.Errorf("profile map mismatch: %v", profiles)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)

	s.SaveTurn("session", "user", "hello")
	s.SaveTurn("session", "assistant", "hi")
	s.SaveMemo("title", "content", "")
	s.SaveProfile("key", "value")

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}

	if stats.Conversations != 2 || stats.Memos != 1 || stats.Schedules != 0 || stats.UserProfiles != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
