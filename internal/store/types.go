package store

import "time"

// Turn is one message (user or assistant) in a conversation.
// Turns are append-only; they are never updated after insertion.
type Turn struct {
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Memo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemoPatch lists the fields of a memo that may be updated. Nil fields
// are left untouched; any update refreshes updated_at.
type MemoPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type Schedule struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type SchedulePatch struct {
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ScheduleQuery selects one of three mutually exclusive modes: exact date,
// month prefix, or (both empty) upcoming entries from today onward.
type ScheduleQuery struct {
	Date  string
	Month string // YYYY-MM
}

type Stats struct {
	Conversations int `json:"conversations_count"`
	Memos         int `json:"memos_count"`
	Schedules     int `json:"schedules_count"`
	UserProfiles  int `json:"user_profiles_count"`
}
