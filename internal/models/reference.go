package models

import "time"

// Status rows are owned by the backend; the ordered, colored
// enumeration is never duplicated client-side.
type Status struct {
	ID         string
	Name       string
	Color      string
	OrderIndex int
	CreatedAt  time.Time
}

type GuaranteeType struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

type User struct {
	ID        string
	Name      string
	Email     string
	ImageURL  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
