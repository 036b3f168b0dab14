package models

import "time"

type Process struct {
	ID              string
	Name            string
	StartAt         time.Time
	EndAt           time.Time
	Status          Status
	Contract        Contract
	Assignee        *Assignee
	Notes           string
	InspectionNotes string
	CourtCaseNumber string
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Contract holds the rental contract data embedded in every process.
// InspectionTime is a free-text "HH:MM" value; combined with
// InspectionDate it pins the vistoria to a single instant.
type Contract struct {
	TenantName       string
	Address          string
	Guarantee        string
	NotificationDate time.Time
	FinalDeadline    time.Time
	InspectionDate   time.Time
	InspectionTime   string
}

type Assignee struct {
	ID       string
	Name     string
	ImageURL string
}
