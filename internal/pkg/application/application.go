package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/alerts"
	"github.com/diwise/alert-mgmt/internal/pkg/application/automations"
	"github.com/diwise/alert-mgmt/internal/pkg/application/entities"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/application/executor"
	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/application/identity"
	"github.com/diwise/alert-mgmt/internal/pkg/application/nlrule"
	"github.com/diwise/alert-mgmt/internal/pkg/application/scheduler"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out application_mock.go . App

type App interface {
	Start(ctx context.Context)
	Stop()

	CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error)
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
	FilterAlerts(ctx context.Context, spec filter.Spec) (types.Collection[types.Alert], error)
	UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, actor, comment string, snooze time.Duration) (types.Alert, error)

	CreateRule(ctx context.Context, rule types.AlertRule) (types.AlertRule, error)
	GetRules(ctx context.Context) (types.Collection[types.AlertRule], error)
	UpdateRule(ctx context.Context, ruleID string, fields map[string]any) (types.AlertRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	CreateNaturalLanguageRule(ctx context.Context, text string) (types.AlertRule, error)
	ParseNaturalLanguage(text string) types.AlertPromptRule

	CreateAutomation(ctx context.Context, automation types.Automation) (types.Automation, error)
	GetAutomations(ctx context.Context, spec filter.AutomationSpec) (types.Collection[types.Automation], error)
	ToggleAutomationStatus(ctx context.Context, automationID string, status types.AutomationStatus) (types.Automation, error)
	RunAutomationNow(ctx context.Context, automationID string) (types.AutomationLog, error)
	DeleteAutomation(ctx context.Context, automationID string) error
	GetAutomationLogs(ctx context.Context, automationID string) (types.Collection[types.AutomationLog], error)
}

type Repositories struct {
	Alerts         storage.Repository[types.Alert]
	Rules          storage.Repository[types.AlertRule]
	Automations    storage.Repository[types.Automation]
	AutomationLogs storage.Repository[types.AutomationLog]
}

func NewInMemoryRepositories() Repositories {
	return Repositories{
		Alerts:         storage.NewInMemory[types.Alert](),
		Rules:          storage.NewInMemory[types.AlertRule](),
		Automations:    storage.NewInMemory[types.Automation](),
		AutomationLogs: storage.NewInMemory[types.AutomationLog](),
	}
}

type app struct {
	alerts      alerts.AlertService
	automations automations.AutomationService
	actors      identity.ActorProvider
	scheduler   *scheduler.Scheduler
}

func New(ctx context.Context, cfg *Config, repos Repositories, sink events.Sink, actors identity.ActorProvider, clock entities.Clock) (App, error) {
	if sink == nil {
		sink = events.Discard
	}
	if actors == nil {
		actors = identity.NewProvider()
	}
	if clock == nil {
		clock = entities.SystemClock
	}

	registry, err := executor.New(cfg.executorConfig(), sink, clock)
	if err != nil {
		return nil, err
	}

	a := &app{
		alerts:      alerts.New(cfg.alertsConfig(), repos.Alerts, repos.Rules, sink, clock),
		automations: automations.New(repos.Automations, repos.AutomationLogs, registry, sink, clock),
		actors:      actors,
	}

	a.scheduler = scheduler.New(cfg.schedulerInterval(), clock,
		scheduler.Job{Name: "expire-snoozed-alerts", Run: a.alerts.ExpireSnoozed},
		scheduler.Job{Name: "run-due-automations", Run: a.automations.RunDue},
		scheduler.Job{Name: "escalate-overdue-alerts", Run: a.alerts.EscalateOverdue},
	)

	if cfg != nil {
		if err := a.seed(ctx, cfg); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// seed adds the rules and automations of the configuration. Entities that
// already exist are left as they are.
func (a *app) seed(ctx context.Context, cfg *Config) error {
	log := logging.GetFromContext(ctx)

	for _, s := range cfg.Rules {
		rule := s.toRule()
		if rule.Name == "" && rule.NaturalLanguage != "" {
			parsed := nlrule.Parse(rule.NaturalLanguage).AlertRule
			parsed.ID = rule.ID
			rule = parsed
		}

		_, err := a.alerts.CreateRule(ctx, rule)
		if err != nil && !errors.Is(err, types.ErrDuplicateID) {
			return fmt.Errorf("could not seed rule %q: %w", s.Name, err)
		}
	}

	for _, s := range cfg.Automations {
		_, err := a.automations.CreateAutomation(ctx, s.toAutomation())
		if err != nil && !errors.Is(err, types.ErrDuplicateID) {
			return fmt.Errorf("could not seed automation %q: %w", s.Name, err)
		}
	}

	log.Debug().Int("rules", len(cfg.Rules)).Int("automations", len(cfg.Automations)).Msg("configuration seeded")

	return nil
}

func (a *app) Start(ctx context.Context) {
	a.scheduler.Start(ctx)
}

func (a *app) Stop() {
	a.scheduler.Stop()
}

// Tick runs the scheduled jobs once, right away.
func (a *app) Tick(ctx context.Context) {
	a.scheduler.Tick(ctx)
}

func (a *app) CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error) {
	return a.alerts.CreateAlert(ctx, alert)
}

func (a *app) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	return a.alerts.GetAlert(ctx, alertID)
}

func (a *app) FilterAlerts(ctx context.Context, spec filter.Spec) (types.Collection[types.Alert], error) {
	return a.alerts.FilterAlerts(ctx, spec)
}

// UpdateAlertStatus changes the status of an alert on behalf of actor. When
// no actor is given, or the request carries a verified token, the current
// actor of ctx is used.
func (a *app) UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, actor, comment string, snooze time.Duration) (types.Alert, error) {
	if identity.Verified(ctx) || strings.TrimSpace(actor) == "" {
		var err error
		actor, err = a.actors.Actor(ctx)
		if err != nil {
			return types.Alert{}, err
		}
	}

	return a.alerts.UpdateAlertStatus(ctx, alertID, status, actor, comment, alerts.WithSnoozeDuration(snooze))
}

func (a *app) CreateRule(ctx context.Context, rule types.AlertRule) (types.AlertRule, error) {
	return a.alerts.CreateRule(ctx, rule)
}

func (a *app) GetRules(ctx context.Context) (types.Collection[types.AlertRule], error) {
	return a.alerts.GetRules(ctx)
}

func (a *app) UpdateRule(ctx context.Context, ruleID string, fields map[string]any) (types.AlertRule, error) {
	return a.alerts.UpdateRule(ctx, ruleID, fields)
}

func (a *app) DeleteRule(ctx context.Context, ruleID string) error {
	return a.alerts.DeleteRule(ctx, ruleID)
}

func (a *app) CreateNaturalLanguageRule(ctx context.Context, text string) (types.AlertRule, error) {
	return a.alerts.CreateNaturalLanguageRule(ctx, text)
}

func (a *app) ParseNaturalLanguage(text string) types.AlertPromptRule {
	return nlrule.Parse(text)
}

func (a *app) CreateAutomation(ctx context.Context, automation types.Automation) (types.Automation, error) {
	if automation.CreatedBy == "" {
		if actor, err := a.actors.Actor(ctx); err == nil {
			automation.CreatedBy = actor
		}
	}
	return a.automations.CreateAutomation(ctx, automation)
}

func (a *app) GetAutomations(ctx context.Context, spec filter.AutomationSpec) (types.Collection[types.Automation], error) {
	return a.automations.GetAutomations(ctx, spec)
}

func (a *app) ToggleAutomationStatus(ctx context.Context, automationID string, status types.AutomationStatus) (types.Automation, error) {
	return a.automations.ToggleAutomationStatus(ctx, automationID, status)
}

func (a *app) RunAutomationNow(ctx context.Context, automationID string) (types.AutomationLog, error) {
	return a.automations.RunAutomationNow(ctx, automationID)
}

func (a *app) DeleteAutomation(ctx context.Context, automationID string) error {
	return a.automations.DeleteAutomation(ctx, automationID)
}

func (a *app) GetAutomationLogs(ctx context.Context, automationID string) (types.Collection[types.AutomationLog], error) {
	return a.automations.GetAutomationLogs(ctx, automationID)
}
