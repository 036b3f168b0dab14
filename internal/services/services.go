package services

import (
	"context"
	"errors"
	"time"

	"github.com/gestaoimob/desocupacao/internal/models"
)

var (
	ErrProcessNotFound = errors.New("process not found")
	// ErrReferenceNotFound means a write pointed at a status,
	// guarantee type or user the backend doesn't know.
	ErrReferenceNotFound = errors.New("reference not found")
)

type ProcessService interface {
	// GetProcesses returns the full process collection, newest first.
	// Views recompute their aggregations from this snapshot on every
	// load; nothing is cached in between.
	GetProcesses(ctx context.Context) ([]models.Process, error)

	// GetProcessByID returns ErrProcessNotFound when no process with
	// the given id exists.
	GetProcessByID(ctx context.Context, id string) (*models.Process, error)

	// CreateProcess inserts a new process and returns it with the
	// denormalized status, guarantee and assignee names filled in.
	// It returns ErrReferenceNotFound when any of the referenced ids
	// is unknown.
	CreateProcess(ctx context.Context, params CreateProcessParams) (*models.Process, error)

	// UpdateProcess overwrites the fields present in params, leaving
	// the rest untouched.
	UpdateProcess(ctx context.Context, params UpdateProcessParams) (*models.Process, error)

	// UpdateProcessStatus moves the process to another status and
	// records the transition in the process history.
	UpdateProcessStatus(ctx context.Context, params UpdateProcessStatusParams) (*models.Process, error)

	DeleteProcess(ctx context.Context, id string) error
}

type ReferenceService interface {
	// GetStatuses returns the status enumeration in board order. The
	// set is owned by the backend and never hard-coded client-side.
	GetStatuses(ctx context.Context) ([]models.Status, error)
	GetGuaranteeTypes(ctx context.Context) ([]models.GuaranteeType, error)
	GetUsers(ctx context.Context) ([]models.User, error)
}

type CalendarService interface {
	GetEvents(ctx context.Context) ([]models.CalendarEvent, error)
}

type HistoryService interface {
	GetProcessHistory(ctx context.Context, processID string) ([]models.HistoryEntry, error)
}

type CreateProcessParams struct {
	Name             string
	TenantName       string
	Address          string
	GuaranteeTypeID  string
	StatusID         string
	AssigneeID       string
	CreatedByID      string
	NotificationDate time.Time
	FinalDeadline    time.Time
	InspectionDate   time.Time
	InspectionTime   string
	StartAt          time.Time
	EndAt            time.Time
	Notes            string
}

type UpdateProcessParams struct {
	ID               string
	UpdatedByID      string
	Name             *string
	TenantName       *string
	Address          *string
	GuaranteeTypeID  *string
	AssigneeID       *string
	NotificationDate *time.Time
	FinalDeadline    *time.Time
	InspectionDate   *time.Time
	InspectionTime   *string
	Notes            *string
	InspectionNotes  *string
}

type UpdateProcessStatusParams struct {
	ID          string
	StatusID    string
	UpdatedByID string
}
