// Package documents keeps the per-process document checklist. The
// checklist lives outside the hosted backend, in a local embedded
// store, and is addressed purely by process id with no foreign-key
// enforcement.
package documents

import (
	"context"
	"time"
)

// Checklist is the fixed four-document delivery state for a process.
// The JSON keys match the names printed on the paperwork.
type Checklist struct {
	DAEV bool `json:"DAEV"`
	CPFL bool `json:"CPFL"`
	Gas  bool `json:"GÁS"`
	CND  bool `json:"CND"`
}

// Delivered counts how many of the four documents were handed in.
func (c Checklist) Delivered() int {
	count := 0
	for _, delivered := range [4]bool{c.DAEV, c.CPFL, c.Gas, c.CND} {
		if delivered {
			count++
		}
	}
	return count
}

type Record struct {
	ProcessID string    `json:"processo_id"`
	Checklist Checklist `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

type Stats struct {
	Total           int
	AllDelivered    int
	SomeDelivered   int
	NoneDelivered   int
	PercentComplete float64
}

// Store is injected into whichever component needs the checklist;
// there is no package-level singleton. Get returns an all-false
// checklist for unknown process ids, and Set overwrites whatever was
// there before. Records are never deleted individually. The embedded
// store completes locally and never blocks on the context.
type Store interface {
	Get(ctx context.Context, processID string) (Checklist, error)
	Set(ctx context.Context, processID string, checklist Checklist, updatedBy string) error
	All(ctx context.Context) ([]Record, error)
	Stats(ctx context.Context) (Stats, error)
}
