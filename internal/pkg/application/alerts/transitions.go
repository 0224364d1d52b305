package alerts

import (
	"time"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/samber/lo"
)

// SystemActor performs transitions nobody asked for, such as snooze expiry.
const SystemActor = "system"

var allowed = map[types.AlertStatus][]types.AlertStatus{
	types.AlertStatusNew:          {types.AlertStatusAcknowledged, types.AlertStatusSnoozed, types.AlertStatusEscalated, types.AlertStatusResolved},
	types.AlertStatusAcknowledged: {types.AlertStatusResolved, types.AlertStatusEscalated},
	types.AlertStatusSnoozed:      {types.AlertStatusNew, types.AlertStatusAcknowledged, types.AlertStatusResolved},
	types.AlertStatusEscalated:    {types.AlertStatusResolved, types.AlertStatusAcknowledged},
	types.AlertStatusResolved:     {},
}

// CanTransition reports whether an alert may move from one status to another.
// Snoozed alerts only return to new when their snooze expires, so that move is
// reserved for the system.
func CanTransition(from, to types.AlertStatus, system bool) bool {
	if from == types.AlertStatusSnoozed && to == types.AlertStatusNew && !system {
		return false
	}
	return lo.Contains(allowed[from], to)
}

type change struct {
	to          types.AlertStatus
	actor       string
	now         time.Time
	snoozeUntil time.Time
	escalateTo  string
}

// apply sets the fields derived from the new status and clears those that
// belonged to the previous one.
func apply(a *types.Alert, c change) {
	a.AcknowledgedAt, a.AcknowledgedBy = nil, ""
	a.ResolvedAt, a.ResolvedBy = nil, ""
	a.SnoozedUntil = nil
	a.EscalatedAt, a.EscalatedTo = nil, ""

	now := c.now

	switch c.to {
	case types.AlertStatusAcknowledged:
		a.AcknowledgedAt = &now
		a.AcknowledgedBy = c.actor
	case types.AlertStatusResolved:
		a.ResolvedAt = &now
		a.ResolvedBy = c.actor
	case types.AlertStatusSnoozed:
		until := c.snoozeUntil
		a.SnoozedUntil = &until
	case types.AlertStatusEscalated:
		a.EscalatedAt = &now
		a.EscalatedTo = c.escalateTo
		a.EscalationLevel++
	}

	a.Status = c.to
}
