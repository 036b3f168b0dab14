package models

import "time"

// CalendarEvent is a raw row from the calendario_eventos view.
// Date and Time are optional; rows without a date are skipped
// during aggregation.
type CalendarEvent struct {
	ID           string
	Title        string
	Date         *time.Time
	Time         string
	Address      string
	TenantName   string
	AssigneeName string
	StatusName   string
	StatusColor  string
}
