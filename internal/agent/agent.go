// Package agent orchestrates one chat turn: persistence of the inbound
// message, context assembly, the model call, and response post-processing.
package agent

import (
	"context"
	"strings"

	"github.com/bowerhall/sisters/internal/llm"
	"github.com/bowerhall/sisters/internal/logger"
	"github.com/bowerhall/sisters/internal/store"
)

// ConversationStore is the slice of the persistence layer the agent needs.
type ConversationStore interface {
	SaveTurn(sessionID, role, content string) error
	History(sessionID string, limit int) ([]store.Turn, error)
}

type Agent struct {
	llm     llm.LLM
	store   ConversationStore
	persona Persona
}

func New(model llm.LLM, st ConversationStore, persona Persona) *Agent {
	return &Agent{
		llm:     model,
		store:   st,
		persona: persona,
	}
}

// Process handles one chat turn end to end and always returns a response
// string. Failures anywhere in the pipeline are logged and mapped to one
// of the persona's fixed fallback messages; they never surface to the
// caller as errors. The inbound user turn is persisted first and is not
// rolled back when a later step fails.
func (a *Agent) Process(ctx context.Context, sessionID, message string, history []HistoryEntry) string {
	if err := a.store.SaveTurn(sessionID, "user", message); err != nil {
		logger.Error("failed to persist user turn", "session", sessionID, "error", err)
		return a.persona.Fallback()
	}

	persisted, err := a.store.History(sessionID, dbHistoryLimit)
	if err != nil {
		logger.Error("failed to load history", "session", sessionID, "error", err)
		return a.persona.Fallback()
	}

	contextBlock := a.persona.BuildContext(persisted, history)

	prompt := contextBlock +
		"\n\n" + a.persona.UserLabel + ": " + message +
		"\n" + a.persona.AssistantLabel + ":"

	reply, err := a.llm.Chat(ctx, a.persona.SystemPrompt, []llm.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		logger.Error("model call failed", "session", sessionID, "error", err)
		return a.persona.Fallback()
	}

	reply = a.stripLabel(reply)

	// the fallback path never reaches here, so an assistant turn is only
	// persisted when the model actually produced one
	if err := a.store.SaveTurn(sessionID, "assistant", reply); err != nil {
		logger.Error("failed to persist assistant turn", "session", sessionID, "error", err)
		return a.persona.Fallback()
	}

	return reply
}

// stripLabel removes a leading assistant label the model sometimes echoes
// back ("ミサカ: ...").
func (a *Agent) stripLabel(reply string) string {
	prefix := a.persona.AssistantLabel + ":"
	if strings.HasPrefix(reply, prefix) {
		reply = strings.TrimSpace(strings.TrimPrefix(reply, prefix))
	}

	return reply
}
