package models

import "time"

type HistoryEntry struct {
	ID          string
	ProcessID   string
	Action      string
	OldStatusID string
	NewStatusID string
	UserID      string
	CreatedAt   time.Time
}
