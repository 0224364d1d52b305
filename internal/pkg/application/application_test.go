package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/application/identity"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const configYaml = `
alerts:
  snoozeMinutes: 15
  fallbackRecipient: duty-manager
  autoEscalate: false
scheduler:
  intervalSeconds: 30
notifications:
  - id: automation-hooks
    name: Automation webhooks
    type: alert-mgmt.automation.action
    subscribers:
    - endpoint: http://api-notification:8990
rules:
  - id: revenue-drop
    name: Revenue drop
    condition: revenue < 100000
    severity: high
    channels: [email, in-app]
    department: sales
    escalationMinutes: 30
    recipients:
    - id: u1
      name: alice
      type: user
      order: 1
      contacts:
        email: alice@example.com
  - id: pto
    naturalLanguage: Notify HR when someone takes more than 10 days of leave
automations:
  - id: weekly-digest
    name: Weekly digest
    category: reporting
    status: active
    isSystem: true
    trigger:
      type: schedule
      config:
        frequency: weekly
    actions:
    - type: log
      params:
        message: weekly digest
`

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestConfig(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	is.Equal(15*time.Minute, cfg.alertsConfig().SnoozeDuration)
	is.Equal("duty-manager", cfg.alertsConfig().FallbackRecipient)
	is.True(!cfg.alertsConfig().AutoEscalate)
	is.Equal(30*time.Second, cfg.schedulerInterval())
	is.Equal(1, len(cfg.executorConfig().Notifications))
	is.Equal(2, len(cfg.Rules))
	is.Equal("alice@example.com", cfg.Rules[0].toRule().Recipients[0].Contacts[types.ChannelEmail])
	is.Equal(types.FrequencyWeekly, cfg.Automations[0].toAutomation().Trigger.Frequency())
}

func TestNilConfigUsesDefaults(t *testing.T) {
	is := is.New(t)

	var cfg *Config
	is.Equal(time.Hour, cfg.alertsConfig().SnoozeDuration)
	is.Equal(60*time.Second, cfg.schedulerInterval())
}

func TestSeedingIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	repos := NewInMemoryRepositories()

	a, err := New(ctx, cfg, repos, nil, identity.Static("alice"), clock)
	is.NoErr(err)

	_, err = New(ctx, cfg, repos, nil, identity.Static("alice"), clock)
	is.NoErr(err)

	rules, err := a.GetRules(ctx)
	is.NoErr(err)
	is.Equal(uint64(2), rules.Count)
	is.Equal("hr", rules.Data[0].Department)
	is.Equal(10.0, *rules.Data[0].Threshold)

	automations, err := a.GetAutomations(ctx, filter.AutomationSpec{})
	is.NoErr(err)
	is.Equal(uint64(1), automations.Count)

	err = a.DeleteAutomation(ctx, "weekly-digest")
	is.True(errors.Is(err, types.ErrValidation))
}

func TestActorIsTakenFromContext(t *testing.T) {
	is, ctx, a := testSetup(t)

	alert, err := a.CreateAlert(ctx, types.Alert{Title: "Revenue drop", Severity: types.SeverityHigh, Department: "sales"})
	is.NoErr(err)

	_, err = a.UpdateAlertStatus(ctx, alert.ID, types.AlertStatusAcknowledged, "", "", 0)
	is.True(errors.Is(err, types.ErrValidation))

	acked, err := a.UpdateAlertStatus(identity.WithActor(ctx, "bob"), alert.ID, types.AlertStatusAcknowledged, "", "", 0)
	is.NoErr(err)
	is.Equal("bob", acked.AcknowledgedBy)
}

func TestTickExpiresSnoozeAndRunsAutomations(t *testing.T) {
	is, ctx, a := testSetup(t)

	alert, err := a.CreateAlert(ctx, types.Alert{Title: "Server load", Severity: types.SeverityMedium, Department: "it"})
	is.NoErr(err)

	_, err = a.UpdateAlertStatus(ctx, alert.ID, types.AlertStatusSnoozed, "alice", "", 5*time.Minute)
	is.NoErr(err)

	automation, err := a.CreateAutomation(identity.WithActor(ctx, "alice"), types.Automation{
		Name:    "Hourly log",
		Trigger: types.Trigger{Type: types.TriggerSchedule, Config: map[string]any{"frequency": "hourly"}},
		Actions: []types.Action{{Type: "log", Params: map[string]any{"message": "tick"}}},
	})
	is.NoErr(err)
	is.Equal("alice", automation.CreatedBy)

	now = now.Add(time.Hour)
	a.(*app).Tick(ctx)

	after, err := a.GetAlert(ctx, alert.ID)
	is.NoErr(err)
	is.Equal(types.AlertStatusNew, after.Status)

	logs, err := a.GetAutomationLogs(ctx, automation.ID)
	is.NoErr(err)
	is.Equal(uint64(1), logs.Count)
	is.Equal(types.LogSuccess, logs.Data[0].Status)
}

func TestAlertRaisedHandler(t *testing.T) {
	is, ctx, a := testSetup(t)

	handler := NewAlertRaisedHandler(a)
	handler(ctx, amqp.Delivery{
		AppId: "revenue-monitor",
		Body:  []byte(`{"title":"Revenue drop","message":"below 100k","severity":"high","department":"sales"}`),
	}, zerolog.Nop())

	handler(ctx, amqp.Delivery{Body: []byte(`{"title":"broken","severity":"extreme"}`)}, zerolog.Nop())
	handler(ctx, amqp.Delivery{Body: []byte(`not json`)}, zerolog.Nop())

	result, err := a.FilterAlerts(ctx, filter.Spec{})
	is.NoErr(err)
	is.Equal(uint64(1), result.Count)
	is.Equal("revenue-monitor", result.Data[0].Source)
}

func TestAlertRaisedHandlerIsRegisteredOnTopic(t *testing.T) {
	is, ctx, a := testSetup(t)

	messenger := &messaging.MsgContextMock{}
	RegisterTopicMessageHandlers(messenger, a)

	calls := messenger.RegisterTopicMessageHandlerCalls()
	is.Equal(1, len(calls))
	is.Equal(AlertRaisedTopic, calls[0].RoutingKey)

	calls[0].Handler(ctx, amqp.Delivery{
		Body: []byte(`{"title":"Slow responses","severity":"medium","department":"it","source":"apm"}`),
	}, zerolog.Nop())

	result, err := a.FilterAlerts(ctx, filter.Spec{})
	is.NoErr(err)
	is.Equal(uint64(1), result.Count)
	is.Equal("apm", result.Data[0].Source)
}

func clock() time.Time {
	return now
}

func testSetup(t *testing.T) (*is.I, context.Context, App) {
	is := is.New(t)
	ctx := context.Background()
	now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	a, err := New(ctx, nil, NewInMemoryRepositories(), nil, nil, clock)
	is.NoErr(err)

	return is, ctx, a
}
