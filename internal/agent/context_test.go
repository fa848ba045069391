package agent

import (
	"strings"
	"testing"

	"github.com/bowerhall/sisters/internal/store"
)

func TestBuildContextClientTailOnly(t *testing.T) {
	p := DefaultPersona()

	history := []HistoryEntry{
		{Role: "user", Content: "a"},
		{Role: "assistant", Content: "b"},
		{Role: "user", Content: "c"},
		{Role: "assistant", Content: "d"},
	}

	got := p.BuildContext(nil, history)

	// only the last 3 of the 4 client entries survive
	want := "ミサカ: b\nユーザー: c\nミサカ: d\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if strings.Contains(got, ": a\n") {
		t.Error("first client entry should have been trimmed")
	}
}

func TestBuildContextWindow(t *testing.T) {
	p := DefaultPersona()

	persisted := []store.Turn{
		{Role: "user", Content: "p1"},
		{Role: "assistant", Content: "p2"},
		{Role: "user", Content: "p3"},
		{Role: "assistant", Content: "p4"},
		{Role: "user", Content: "p5"},
		{Role: "assistant", Content: "p6"},
	}

	history := []HistoryEntry{
		{Role: "user", Content: "c1"},
		{Role: "assistant", Content: "c2"},
		{Role: "user", Content: "c3"},
		{Role: "assistant", Content: "c4"},
		{Role: "user", Content: "c5"},
	}

	got := p.BuildContext(persisted, history)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 context lines, got %d: %q", len(lines), got)
	}

	// persisted-then-client order, not globally chronological: the window
	// keeps p2..p6 followed by the client tail c3..c5
	wantOrder := []string{"p2", "p3", "p4", "p5", "p6", "c3", "c4", "c5"}
	for i, want := range wantOrder {
		if !strings.HasSuffix(lines[i], ": "+want) {
			t.Errorf("line %d: expected content %q, got %q", i, want, lines[i])
		}
	}
}

func TestBuildContextEmpty(t *testing.T) {
	p := DefaultPersona()

	if got := p.BuildContext(nil, nil); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

func TestBuildContextLabels(t *testing.T) {
	p := DefaultPersona()

	got := p.BuildContext([]store.Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
	}, nil)

	want := "ユーザー: hello\nミサカ: hi\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
