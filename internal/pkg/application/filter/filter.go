package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/samber/lo"
)

type TimeRange string

const (
	TimeRangeAll        TimeRange = "all"
	TimeRangeToday      TimeRange = "today"
	TimeRangeYesterday  TimeRange = "yesterday"
	TimeRangeLast7Days  TimeRange = "last7days"
	TimeRangeLast30Days TimeRange = "last30days"
)

// Spec selects alerts. Every active criterion must match. An empty set or an
// empty string leaves that criterion unconstrained.
type Spec struct {
	Severity    []types.Severity    `json:"severity,omitempty"`
	Status      []types.AlertStatus `json:"status,omitempty"`
	Departments []string            `json:"departments,omitempty"`
	Search      string              `json:"search,omitempty"`
	TimeRange   TimeRange           `json:"timeRange,omitempty"`
}

func (s Spec) Validate() error {
	for _, sev := range s.Severity {
		if !sev.Valid() {
			return fmt.Errorf("%w: unknown severity %q", types.ErrValidation, sev)
		}
	}
	for _, st := range s.Status {
		if !st.Valid() {
			return fmt.Errorf("%w: unknown status %q", types.ErrValidation, st)
		}
	}
	switch s.TimeRange {
	case "", TimeRangeAll, TimeRangeToday, TimeRangeYesterday, TimeRangeLast7Days, TimeRangeLast30Days:
	default:
		return fmt.Errorf("%w: unknown time range %q", types.ErrValidation, s.TimeRange)
	}
	return nil
}

// Alerts returns the alerts matching spec, keeping their relative order.
// Calendar based ranges are computed in the location of now.
func Alerts(alerts []types.Alert, spec Spec, now time.Time) ([]types.Alert, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	inRange := timeWindow(spec.TimeRange, now)
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	return lo.Filter(alerts, func(a types.Alert, _ int) bool {
		if len(spec.Severity) > 0 && !lo.Contains(spec.Severity, a.Severity) {
			return false
		}
		if len(spec.Status) > 0 && !lo.Contains(spec.Status, a.Status) {
			return false
		}
		if len(spec.Departments) > 0 && !lo.ContainsBy(spec.Departments, func(d string) bool {
			return strings.EqualFold(d, a.Department)
		}) {
			return false
		}
		if search != "" && !containsAny(search, a.Title, a.Message, a.Department) {
			return false
		}
		return inRange(a.CreatedAt)
	}), nil
}

func containsAny(needle string, haystacks ...string) bool {
	return lo.SomeBy(haystacks, func(h string) bool {
		return strings.Contains(strings.ToLower(h), needle)
	})
}

func timeWindow(tr TimeRange, now time.Time) func(time.Time) bool {
	day := 24 * time.Hour
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	between := func(from, to time.Time, inclusive bool) func(time.Time) bool {
		return func(t time.Time) bool {
			if t.Before(from) {
				return false
			}
			if inclusive {
				return !t.After(to)
			}
			return t.Before(to)
		}
	}

	switch tr {
	case TimeRangeToday:
		return between(midnight, midnight.Add(day), false)
	case TimeRangeYesterday:
		return between(midnight.Add(-day), midnight, false)
	case TimeRangeLast7Days:
		return between(now.Add(-7*day), now, true)
	case TimeRangeLast30Days:
		return between(now.Add(-30*day), now, true)
	default:
		return func(time.Time) bool { return true }
	}
}

// AutomationSpec selects automations, with the same semantics as Spec.
type AutomationSpec struct {
	Status     []types.AutomationStatus `json:"status,omitempty"`
	Categories []string                 `json:"categories,omitempty"`
	Search     string                   `json:"search,omitempty"`
}

func Automations(automations []types.Automation, spec AutomationSpec) ([]types.Automation, error) {
	for _, st := range spec.Status {
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown automation status %q", types.ErrValidation, st)
		}
	}

	search := strings.ToLower(strings.TrimSpace(spec.Search))

	return lo.Filter(automations, func(a types.Automation, _ int) bool {
		if len(spec.Status) > 0 && !lo.Contains(spec.Status, a.Status) {
			return false
		}
		if len(spec.Categories) > 0 && !lo.ContainsBy(spec.Categories, func(c string) bool {
			return strings.EqualFold(c, a.Category)
		}) {
			return false
		}
		return search == "" || containsAny(search, a.Name, a.Description, a.Category)
	}), nil
}
