package alerts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/entities"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/alerts")

type AlertService interface {
	CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error)
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
	FilterAlerts(ctx context.Context, spec filter.Spec) (types.Collection[types.Alert], error)
	UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, actor, comment string, opts ...TransitionOption) (types.Alert, error)

	CreateRule(ctx context.Context, rule types.AlertRule) (types.AlertRule, error)
	GetRule(ctx context.Context, ruleID string) (types.AlertRule, error)
	GetRules(ctx context.Context) (types.Collection[types.AlertRule], error)
	UpdateRule(ctx context.Context, ruleID string, fields map[string]any) (types.AlertRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	CreateNaturalLanguageRule(ctx context.Context, text string) (types.AlertRule, error)

	ExpireSnoozed(ctx context.Context, now time.Time) (int, error)
	EscalateOverdue(ctx context.Context, now time.Time) (int, error)
}

type Config struct {
	SnoozeDuration    time.Duration
	FallbackRecipient string
	AutoEscalate      bool
}

func DefaultConfig() Config {
	return Config{
		SnoozeDuration:    time.Hour,
		FallbackRecipient: "on-call",
		AutoEscalate:      true,
	}
}

type TransitionOption func(*transitionOptions)

type transitionOptions struct {
	snoozeFor time.Duration
}

// WithSnoozeDuration overrides the configured snooze duration for a single
// transition to snoozed.
func WithSnoozeDuration(d time.Duration) TransitionOption {
	return func(o *transitionOptions) {
		if d > 0 {
			o.snoozeFor = d
		}
	}
}

var errSkip = errors.New("skip")

type alertSvc struct {
	cfg    Config
	alerts *entities.Store[types.Alert, *types.Alert]
	rules  *entities.Store[types.AlertRule, *types.AlertRule]
	sink   events.Sink
	now    entities.Clock
}

func New(cfg Config, alerts storage.Repository[types.Alert], rules storage.Repository[types.AlertRule], sink events.Sink, clock entities.Clock) AlertService {
	if sink == nil {
		sink = events.Discard
	}
	if clock == nil {
		clock = entities.SystemClock
	}
	if cfg.SnoozeDuration <= 0 {
		cfg.SnoozeDuration = time.Hour
	}

	return &alertSvc{
		cfg:    cfg,
		alerts: entities.New[types.Alert]("alert", alerts, sink, clock),
		rules:  entities.New[types.AlertRule]("rule", rules, sink, clock),
		sink:   sink,
		now:    clock,
	}
}

func (svc *alertSvc) CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error) {
	if alert.Status == "" {
		alert.Status = types.AlertStatusNew
	}
	if alert.Status != types.AlertStatusNew {
		return types.Alert{}, fmt.Errorf("%w: alerts must be created with status new", types.ErrValidation)
	}
	if !alert.Severity.Valid() {
		return types.Alert{}, fmt.Errorf("%w: unknown severity %q", types.ErrValidation, alert.Severity)
	}
	if strings.TrimSpace(alert.Title) == "" {
		return types.Alert{}, fmt.Errorf("%w: alert has no title", types.ErrValidation)
	}

	alert.AcknowledgedAt, alert.AcknowledgedBy = nil, ""
	alert.ResolvedAt, alert.ResolvedBy = nil, ""
	alert.SnoozedUntil = nil
	alert.EscalatedAt, alert.EscalatedTo = nil, ""
	alert.EscalationLevel = 0

	return svc.alerts.Create(ctx, alert)
}

func (svc *alertSvc) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	return svc.alerts.Get(ctx, alertID)
}

func (svc *alertSvc) FilterAlerts(ctx context.Context, spec filter.Spec) (types.Collection[types.Alert], error) {
	all, err := svc.alerts.List(ctx)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	result, err := filter.Alerts(all, spec, svc.now())
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	c := types.NewCollection(result)
	c.TotalCount = uint64(len(all))

	return c, nil
}

func (svc *alertSvc) UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, actor, comment string, opts ...TransitionOption) (alert types.Alert, err error) {
	ctx, span := tracer.Start(ctx, "update-alert-status")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if strings.TrimSpace(actor) == "" {
		return types.Alert{}, fmt.Errorf("%w: an actor is required to change the status of an alert", types.ErrValidation)
	}

	return svc.transition(ctx, alertID, status, actor, comment, nil, svc.now(), opts...)
}

// transition moves an alert to a new status. A non nil guard marks the
// transition as system initiated and must hold for the transition to happen.
func (svc *alertSvc) transition(ctx context.Context, alertID string, to types.AlertStatus, actor, comment string, guard func(types.Alert) bool, now time.Time, opts ...TransitionOption) (types.Alert, error) {
	if !to.Valid() {
		return types.Alert{}, fmt.Errorf("%w: unknown status %q", types.ErrValidation, to)
	}

	o := transitionOptions{snoozeFor: svc.cfg.SnoozeDuration}
	for _, opt := range opts {
		opt(&o)
	}

	var from types.AlertStatus

	updated, err := svc.alerts.Update(ctx, alertID, func(a *types.Alert) error {
		from = a.Status

		if guard != nil && !guard(*a) {
			return errSkip
		}

		if !CanTransition(a.Status, to, guard != nil) {
			return fmt.Errorf("%w: %s -> %s", types.ErrInvalidTransition, a.Status, to)
		}

		c := change{
			to:          to,
			actor:       actor,
			now:         now,
			snoozeUntil: now.Add(o.snoozeFor),
		}

		if to == types.AlertStatusEscalated {
			c.escalateTo = svc.nextRecipient(ctx, *a)
		}

		apply(a, c)
		return nil
	})
	if err != nil {
		return types.Alert{}, err
	}

	err = svc.sink.Publish(ctx, &types.AlertStatusChanged{
		AlertID:   updated.ID,
		OldStatus: from,
		NewStatus: updated.Status,
		Actor:     actor,
		Comment:   comment,
		Timestamp: updated.UpdatedAt,
	})
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("alert_id", updated.ID).Msg("failed to publish status change")
	}

	return updated, nil
}

// nextRecipient walks the escalation order of the rule that raised the alert.
// When there is no such rule, or every recipient has already been tried, the
// configured fallback is used.
func (svc *alertSvc) nextRecipient(ctx context.Context, a types.Alert) string {
	if a.RuleID == "" {
		return svc.cfg.FallbackRecipient
	}

	rule, err := svc.rules.Get(ctx, a.RuleID)
	if err != nil {
		return svc.cfg.FallbackRecipient
	}

	recipients := append([]types.AlertRecipient{}, rule.Recipients...)
	sort.SliceStable(recipients, func(i, j int) bool {
		return recipients[i].Order < recipients[j].Order
	})

	if a.EscalationLevel < 0 || a.EscalationLevel >= len(recipients) {
		return svc.cfg.FallbackRecipient
	}

	r := recipients[a.EscalationLevel]
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// ExpireSnoozed moves every alert whose snooze ended before now back to new.
func (svc *alertSvc) ExpireSnoozed(ctx context.Context, now time.Time) (int, error) {
	log := logging.GetFromContext(ctx)

	all, err := svc.alerts.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, a := range all {
		if !snoozeExpired(a, now) {
			continue
		}

		_, err := svc.systemTransition(ctx, a.ID, types.AlertStatusNew, "snooze expired", now, func(current types.Alert) bool {
			return snoozeExpired(current, now)
		})
		if err != nil {
			if !errors.Is(err, errSkip) {
				log.Error().Err(err).Str("alert_id", a.ID).Msg("failed to expire snooze")
			}
			continue
		}

		count++
	}

	return count, nil
}

func snoozeExpired(a types.Alert, now time.Time) bool {
	return a.Status == types.AlertStatusSnoozed && a.SnoozedUntil != nil && a.SnoozedUntil.Before(now)
}

// EscalateOverdue escalates new alerts that nobody has acknowledged within
// the escalation time of their rule.
func (svc *alertSvc) EscalateOverdue(ctx context.Context, now time.Time) (int, error) {
	if !svc.cfg.AutoEscalate {
		return 0, nil
	}

	log := logging.GetFromContext(ctx)

	all, err := svc.alerts.List(ctx)
	if err != nil {
		return 0, err
	}

	rules := map[string]types.AlertRule{}
	count := 0

	for _, a := range all {
		if a.Status != types.AlertStatusNew || a.RuleID == "" {
			continue
		}

		rule, ok := rules[a.RuleID]
		if !ok {
			rule, err = svc.rules.Get(ctx, a.RuleID)
			if err != nil {
				continue
			}
			rules[a.RuleID] = rule
		}

		if !overdue(a, rule, now) {
			continue
		}

		_, err := svc.systemTransition(ctx, a.ID, types.AlertStatusEscalated, "not acknowledged in time", now, func(current types.Alert) bool {
			return current.Status == types.AlertStatusNew && overdue(current, rule, now)
		})
		if err != nil {
			if !errors.Is(err, errSkip) {
				log.Error().Err(err).Str("alert_id", a.ID).Msg("failed to escalate alert")
			}
			continue
		}

		count++
	}

	return count, nil
}

func overdue(a types.Alert, rule types.AlertRule, now time.Time) bool {
	if !rule.Enabled || rule.EscalationMinutes <= 0 {
		return false
	}
	deadline := a.UpdatedAt.Add(time.Duration(rule.EscalationMinutes) * time.Minute)
	return !deadline.After(now)
}

// systemTransition re-checks its precondition while holding the store lock
// so that a concurrent manual transition wins over the system.
func (svc *alertSvc) systemTransition(ctx context.Context, alertID string, to types.AlertStatus, comment string, now time.Time, stillApplies func(types.Alert) bool) (types.Alert, error) {
	return svc.transition(ctx, alertID, to, SystemActor, comment, stillApplies, now)
}
