package dashboard

import (
	"slices"
	"strings"

	"github.com/gestaoimob/desocupacao/internal/models"
)

// Filter is the compound search applied over the in-memory process
// collection. Search matches case-insensitively against name, tenant,
// address and id; each of the three sets restricts its dimension only
// when non-empty. The result is the AND of all four dimensions.
type Filter struct {
	Search     string
	Statuses   []string
	Guarantees []string
	Assignees  []string
}

func (f Filter) IsEmpty() bool {
	return f.Search == "" &&
		len(f.Statuses) == 0 &&
		len(f.Guarantees) == 0 &&
		len(f.Assignees) == 0
}

func (f Filter) Match(process models.Process) bool {
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		matched := strings.Contains(strings.ToLower(process.Name), query) ||
			strings.Contains(strings.ToLower(process.Contract.TenantName), query) ||
			strings.Contains(strings.ToLower(process.Contract.Address), query) ||
			strings.Contains(strings.ToLower(process.ID), query)
		if !matched {
			return false
		}
	}

	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, process.Status.Name) {
		return false
	}

	if len(f.Guarantees) > 0 && !slices.Contains(f.Guarantees, process.Contract.Guarantee) {
		return false
	}

	if len(f.Assignees) > 0 {
		if process.Assignee == nil || !slices.Contains(f.Assignees, process.Assignee.ID) {
			return false
		}
	}

	return true
}

// Apply evaluates the filter per process with no cross-process state,
// preserving input order.
func Apply(processes []models.Process, f Filter) []models.Process {
	filtered := make([]models.Process, 0, len(processes))
	for _, process := range processes {
		if f.Match(process) {
			filtered = append(filtered, process)
		}
	}
	return filtered
}
