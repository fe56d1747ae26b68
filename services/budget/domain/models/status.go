package models

import (
	"fmt"

	"github.com/cotadorplus/cotador/services/budget/domain"
)

// Status is the lifecycle state of a budget.
// Transitions are not constrained; any status may follow any other.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusDraft, StatusSent, StatusApproved, StatusPaid, StatusRejected, StatusCanceled}

// ParseStatus converts s into a Status, returning ErrInvalidStatus for unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusPaid, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// Emittable reports whether a budget in this status may be described by a
// BudgetCreated event. The event schema only knows draft, approved and rejected.
func (s Status) Emittable() bool {
	return s == StatusDraft || s == StatusApproved || s == StatusRejected
}

// Label returns the pt-BR label shown to users. Unknown values read as draft.
func (s Status) Label() string {
	switch s {
	case StatusSent:
		return "Enviado"
	case StatusPaid:
		return "Pago"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Recusado"
	case StatusCanceled:
		return "Cancelado"
	default:
		return "Rascunho"
	}
}

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}
