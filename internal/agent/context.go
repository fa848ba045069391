package agent

import (
	"strings"

	"github.com/bowerhall/sisters/internal/store"
)

const (
	dbHistoryLimit    = 5 // persisted turns pulled into the context
	clientHistoryTail = 3 // client-supplied entries kept
	contextWindow     = 8 // total entries rendered
)

// HistoryEntry is one client-asserted message in the request payload.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildContext merges persisted turns with the tail of the client-supplied
// history into a bounded, labeled text block.
//
// Persisted turns come first, then the last three client entries in their
// given order. This is a plain append, not a timestamp merge: when the
// client history overlaps the persisted one, duplicate or out-of-order
// lines appear in the result. Callers needing strict chronology must
// deduplicate upstream.
func (p Persona) BuildContext(persisted []store.Turn, clientHistory []HistoryEntry) string {
	combined := make([]HistoryEntry, 0, len(persisted)+clientHistoryTail)

	for _, t := range persisted {
		combined = append(combined, HistoryEntry{Role: t.Role, Content: t.Content})
	}

	tail := clientHistory
	if len(tail) > clientHistoryTail {
		tail = tail[len(tail)-clientHistoryTail:]
	}
	combined = append(combined, tail...)

	if len(combined) > contextWindow {
		combined = combined[len(combined)-contextWindow:]
	}

	var b strings.Builder
	for _, entry := range combined {
		label := p.AssistantLabel
		if entry.Role == "user" {
			label = p.UserLabel
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}

	return b.String()
}
