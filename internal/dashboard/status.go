package dashboard

import "strings"

// StatusCategory is the stable classification used by metrics and the
// timeline. Status rows carry no category column, so names are mapped
// through ClassifyStatus.
type StatusCategory string

const (
	CategoryNotification StatusCategory = "notificacao"
	CategoryScheduled    StatusCategory = "agendada"
	CategoryApproved     StatusCategory = "aprovada"
	CategoryRejected     StatusCategory = "reprovada"
	CategoryJudicial     StatusCategory = "judicial"
	CategoryOther        StatusCategory = "outros"
)

// ClassifyStatus maps a status name to its category by case-insensitive
// substring, first match wins. "Vistoria Agendada - Reagendada" still
// lands on CategoryScheduled exactly once. This is a migration shim for
// the absence of a category column on the status table.
func ClassifyStatus(name string) StatusCategory {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "notificação"):
		return CategoryNotification
	case strings.Contains(lower, "agendada"):
		return CategoryScheduled
	case strings.Contains(lower, "aprovada"):
		return CategoryApproved
	case strings.Contains(lower, "reprovada"):
		return CategoryRejected
	case strings.Contains(lower, "judicial"):
		return CategoryJudicial
	default:
		return CategoryOther
	}
}
