package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoimob/desocupacao/internal/models"
)

func TestFilterIsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{Search: "rua"}.IsEmpty())
	assert.False(t, Filter{Statuses: []string{"Vistoria Agendada"}}.IsEmpty())
	assert.False(t, Filter{Guarantees: []string{"Caução"}}.IsEmpty())
	assert.False(t, Filter{Assignees: []string{"u1"}}.IsEmpty())
}

func TestFilterMatchSearchFields(t *testing.T) {
	process := newProcess("proc-42", "Vistoria Agendada", models.Contract{
		TenantName: "Maria Souza",
		Address:    "Rua das Flores, 123",
	})

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"tenant name, case-insensitive", "maria", true},
		{"address fragment", "FLORES", true},
		{"process name", "desocupação", true},
		{"process id", "proc-42", true},
		{"no field matches", "centro", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter{Search: tt.search}.Match(process))
		})
	}
}

func TestFilterMatchAllDimensionsMustPass(t *testing.T) {
	process := newProcess("p1", "Vistoria Agendada", models.Contract{
		TenantName: "Maria Souza",
		Address:    "Rua das Flores, 123",
		Guarantee:  "Caução",
	})
	process.Assignee = &models.Assignee{ID: "u1", Name: "Ana"}

	full := Filter{
		Search:     "maria",
		Statuses:   []string{"Vistoria Agendada"},
		Guarantees: []string{"Caução"},
		Assignees:  []string{"u1"},
	}
	assert.True(t, full.Match(process))

	// Flipping any single dimension to a non-matching value rejects
	// the process, regardless of the other three.
	failing := []Filter{
		{Search: "centro", Statuses: full.Statuses, Guarantees: full.Guarantees, Assignees: full.Assignees},
		{Search: full.Search, Statuses: []string{"Vistoria Aprovada"}, Guarantees: full.Guarantees, Assignees: full.Assignees},
		{Search: full.Search, Statuses: full.Statuses, Guarantees: []string{"Fiador"}, Assignees: full.Assignees},
		{Search: full.Search, Statuses: full.Statuses, Guarantees: full.Guarantees, Assignees: []string{"u2"}},
	}
	for _, f := range failing {
		assert.False(t, f.Match(process))
	}
}

func TestFilterMatchMissingAssignee(t *testing.T) {
	process := newProcess("p1", "Vistoria Agendada", models.Contract{TenantName: "Maria"})

	assert.True(t, Filter{}.Match(process))
	assert.False(t, Filter{Assignees: []string{"u1"}}.Match(process),
		"unassigned processes never pass an assignee filter")
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	processes := []models.Process{
		newProcess("p1", "Vistoria Agendada", models.Contract{TenantName: "A"}),
		newProcess("p2", "Vistoria Aprovada", models.Contract{TenantName: "B"}),
		newProcess("p3", "Processo Judicial", models.Contract{TenantName: "C"}),
	}

	filtered := Apply(processes, Filter{})
	require.Len(t, filtered, len(processes))
	for i := range processes {
		assert.Equal(t, processes[i].ID, filtered[i].ID, "input order is preserved")
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	processes := []models.Process{
		newProcess("p1", "Vistoria Agendada", models.Contract{TenantName: "A"}),
		newProcess("p2", "Vistoria Aprovada", models.Contract{TenantName: "B"}),
		newProcess("p3", "Vistoria Agendada", models.Contract{TenantName: "C"}),
	}

	filtered := Apply(processes, Filter{Statuses: []string{"Vistoria Agendada"}})
	require.Len(t, filtered, 2)
	assert.Equal(t, "p1", filtered[0].ID)
	assert.Equal(t, "p3", filtered[1].ID)
}
