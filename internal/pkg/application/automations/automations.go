package automations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/entities"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/automations")

//go:generate moq -rm -out actionexecutor_mock.go . ActionExecutor
type ActionExecutor interface {
	Execute(ctx context.Context, automation types.Automation) error
}

type AutomationService interface {
	CreateAutomation(ctx context.Context, automation types.Automation) (types.Automation, error)
	GetAutomation(ctx context.Context, automationID string) (types.Automation, error)
	GetAutomations(ctx context.Context, spec filter.AutomationSpec) (types.Collection[types.Automation], error)
	ToggleAutomationStatus(ctx context.Context, automationID string, status types.AutomationStatus) (types.Automation, error)
	RunAutomationNow(ctx context.Context, automationID string) (types.AutomationLog, error)
	DeleteAutomation(ctx context.Context, automationID string) error
	GetAutomationLogs(ctx context.Context, automationID string) (types.Collection[types.AutomationLog], error)

	RunDue(ctx context.Context, now time.Time) (int, error)
}

var errNotDue = errors.New("automation is not due")

type automationSvc struct {
	mu          sync.Mutex
	automations *entities.Store[types.Automation, *types.Automation]
	logs        storage.Repository[types.AutomationLog]
	executor    ActionExecutor
	sink        events.Sink
	now         entities.Clock
}

func New(automations storage.Repository[types.Automation], logs storage.Repository[types.AutomationLog], executor ActionExecutor, sink events.Sink, clock entities.Clock) AutomationService {
	if sink == nil {
		sink = events.Discard
	}
	if clock == nil {
		clock = entities.SystemClock
	}

	return &automationSvc{
		automations: entities.New[types.Automation]("automation", automations, sink, clock),
		logs:        logs,
		executor:    executor,
		sink:        sink,
		now:         clock,
	}
}

// Advance returns the next point in time a schedule with the given frequency
// should run after t.
func Advance(t time.Time, f types.Frequency) (time.Time, error) {
	switch f {
	case types.FrequencyHourly:
		return t.Add(time.Hour), nil
	case types.FrequencyDaily:
		return t.AddDate(0, 0, 1), nil
	case types.FrequencyWeekly:
		return t.AddDate(0, 0, 7), nil
	case types.FrequencyMonthly:
		return t.AddDate(0, 1, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown frequency %q", types.ErrValidation, f)
}

func isScheduled(a types.Automation) bool {
	return a.Status == types.AutomationActive && a.Trigger.Type == types.TriggerSchedule
}

func validate(a types.Automation) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: automation has no name", types.ErrValidation)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: unknown automation status %q", types.ErrValidation, a.Status)
	}
	switch a.Trigger.Type {
	case types.TriggerSchedule:
		if _, err := Advance(time.Time{}, a.Trigger.Frequency()); err != nil {
			return err
		}
	case types.TriggerEvent, types.TriggerCondition:
	default:
		return fmt.Errorf("%w: unknown trigger type %q", types.ErrValidation, a.Trigger.Type)
	}
	for _, action := range a.Actions {
		if action.Type == "" {
			return fmt.Errorf("%w: action without type", types.ErrValidation)
		}
	}
	return nil
}

func (svc *automationSvc) CreateAutomation(ctx context.Context, automation types.Automation) (types.Automation, error) {
	if automation.Status == "" {
		automation.Status = types.AutomationActive
	}
	if automation.Actions == nil {
		automation.Actions = []types.Action{}
	}

	if err := validate(automation); err != nil {
		return types.Automation{}, err
	}

	automation.LastRun = nil
	automation.NextRun = nil

	if isScheduled(automation) {
		next, _ := Advance(svc.now(), automation.Trigger.Frequency())
		automation.NextRun = &next
	}

	return svc.automations.Create(ctx, automation)
}

func (svc *automationSvc) GetAutomation(ctx context.Context, automationID string) (types.Automation, error) {
	return svc.automations.Get(ctx, automationID)
}

func (svc *automationSvc) GetAutomations(ctx context.Context, spec filter.AutomationSpec) (types.Collection[types.Automation], error) {
	all, err := svc.automations.List(ctx)
	if err != nil {
		return types.Collection[types.Automation]{}, err
	}

	result, err := filter.Automations(all, spec)
	if err != nil {
		return types.Collection[types.Automation]{}, err
	}

	c := types.NewCollection(result)
	c.TotalCount = uint64(len(all))

	return c, nil
}

// ToggleAutomationStatus sets the status of an automation. Without a status
// an active automation is paused and any other is activated.
func (svc *automationSvc) ToggleAutomationStatus(ctx context.Context, automationID string, status types.AutomationStatus) (types.Automation, error) {
	if status != "" && !status.Valid() {
		return types.Automation{}, fmt.Errorf("%w: unknown automation status %q", types.ErrValidation, status)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.automations.Update(ctx, automationID, func(a *types.Automation) error {
		wasScheduled := isScheduled(*a)

		switch {
		case status != "":
			a.Status = status
		case a.Status == types.AutomationActive:
			a.Status = types.AutomationPaused
		default:
			a.Status = types.AutomationActive
		}

		if !isScheduled(*a) {
			a.NextRun = nil
			return nil
		}

		if !wasScheduled || a.NextRun == nil {
			next, err := Advance(svc.now(), a.Trigger.Frequency())
			if err != nil {
				return err
			}
			a.NextRun = &next
		}

		return nil
	})
}

func (svc *automationSvc) DeleteAutomation(ctx context.Context, automationID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	a, err := svc.automations.Get(ctx, automationID)
	if err != nil {
		return err
	}

	if a.IsSystem {
		return fmt.Errorf("%w: system automation %s can not be deleted", types.ErrValidation, automationID)
	}

	return svc.automations.Delete(ctx, automationID)
}

func (svc *automationSvc) GetAutomationLogs(ctx context.Context, automationID string) (types.Collection[types.AutomationLog], error) {
	logs, err := svc.logs.List(ctx)
	if err != nil {
		return types.Collection[types.AutomationLog]{}, err
	}

	if automationID != "" {
		logs = lo.Filter(logs, func(l types.AutomationLog, _ int) bool {
			return l.AutomationID == automationID
		})
	}

	return types.NewCollection(logs), nil
}

// RunAutomationNow executes an automation immediately, whatever its status or
// schedule. A scheduled automation gets its next run moved forward from now.
func (svc *automationSvc) RunAutomationNow(ctx context.Context, automationID string) (entry types.AutomationLog, err error) {
	ctx, span := tracer.Start(ctx, "run-automation-now")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	now := svc.now()

	claimed, err := svc.claim(ctx, automationID, now, func(types.Automation) bool { return true })
	if err != nil {
		return types.AutomationLog{}, err
	}

	return svc.execute(ctx, claimed, now)
}

// RunDue executes every active scheduled automation whose next run is not
// after now. Each due run is claimed before anything is executed so that
// overlapping calls can not run it twice.
func (svc *automationSvc) RunDue(ctx context.Context, now time.Time) (int, error) {
	logger := logging.GetFromContext(ctx)

	all, err := svc.automations.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, a := range all {
		if !isDue(a, now) {
			continue
		}

		claimed, err := svc.claim(ctx, a.ID, now, func(current types.Automation) bool {
			return isDue(current, now)
		})
		if err != nil {
			if !errors.Is(err, errNotDue) {
				logger.Error().Err(err).Str("automation_id", a.ID).Msg("failed to claim automation")
			}
			continue
		}

		if _, err := svc.execute(ctx, claimed, now); err != nil {
			logger.Error().Err(err).Str("automation_id", a.ID).Msg("failed to record automation run")
		}

		count++
	}

	return count, nil
}

func isDue(a types.Automation, now time.Time) bool {
	return isScheduled(a) && a.NextRun != nil && !a.NextRun.After(now)
}

func (svc *automationSvc) claim(ctx context.Context, automationID string, now time.Time, due func(types.Automation) bool) (types.Automation, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.automations.Update(ctx, automationID, func(a *types.Automation) error {
		if !due(*a) {
			return errNotDue
		}

		lastRun := now
		a.LastRun = &lastRun

		if isScheduled(*a) {
			next, err := Advance(now, a.Trigger.Frequency())
			if err != nil {
				return err
			}
			a.NextRun = &next
		}

		return nil
	})
}

func (svc *automationSvc) execute(ctx context.Context, a types.Automation, now time.Time) (types.AutomationLog, error) {
	logger := logging.GetFromContext(ctx).With().Str("automation_id", a.ID).Logger()

	entry := types.AutomationLog{
		ID:             uuid.NewString(),
		AutomationID:   a.ID,
		AutomationName: a.Name,
		Timestamp:      now,
		Status:         types.LogSuccess,
		Message:        fmt.Sprintf("executed %d action(s)", len(a.Actions)),
	}

	switch {
	case len(a.Actions) == 0:
		entry.Status = types.LogWarning
		entry.Message = "no actions configured"
	case svc.executor == nil:
		entry.Status = types.LogError
		entry.Message = "no action executor configured"
	default:
		if err := svc.executor.Execute(ctx, a); err != nil {
			logger.Warn().Err(err).Msg("automation failed")
			entry.Status = types.LogError
			entry.Message = "execution failed"
			entry.Details = err.Error()
		}
	}

	err := svc.logs.Add(ctx, entry.ID, entry)
	if err != nil {
		return types.AutomationLog{}, fmt.Errorf("could not store automation log: %w", err)
	}

	err = svc.sink.Publish(ctx, &types.AutomationExecuted{Log: entry})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to publish automation log")
	}

	return entry, nil
}
