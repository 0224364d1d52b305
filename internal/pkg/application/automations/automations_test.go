package automations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestScheduledRunAdvancesNextRun(t *testing.T) {
	for _, f := range []types.Frequency{types.FrequencyHourly, types.FrequencyDaily, types.FrequencyWeekly, types.FrequencyMonthly} {
		is, ctx, svc, executor, clock := testSetup(t, nil)

		a, err := svc.CreateAutomation(ctx, scheduled("report", f))
		is.NoErr(err)
		is.True(a.NextRun != nil)

		previous := *a.NextRun
		clock.now = previous

		n, err := svc.RunDue(ctx, clock.now)
		is.NoErr(err)
		is.Equal(1, n)
		is.Equal(1, len(executor.ExecuteCalls()))

		after, err := svc.GetAutomation(ctx, a.ID)
		is.NoErr(err)

		expected, _ := Advance(*after.LastRun, f)
		is.True(after.NextRun.After(previous))
		is.Equal(expected, *after.NextRun)
	}
}

func TestMonthlyUsesCalendarMonths(t *testing.T) {
	is := is.New(t)

	next, err := Advance(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), types.FrequencyMonthly)
	is.NoErr(err)
	is.Equal(time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC), next)

	_, err = Advance(time.Now(), "fortnightly")
	is.True(errors.Is(err, types.ErrValidation))
}

func TestNotDueAutomationsAreLeftAlone(t *testing.T) {
	is, ctx, svc, executor, clock := testSetup(t, nil)

	_, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyDaily))
	is.NoErr(err)

	paused := scheduled("paused", types.FrequencyHourly)
	paused.Status = types.AutomationPaused
	_, err = svc.CreateAutomation(ctx, paused)
	is.NoErr(err)

	n, err := svc.RunDue(ctx, clock.now.Add(2*time.Hour))
	is.NoErr(err)
	is.Equal(0, n)
	is.Equal(0, len(executor.ExecuteCalls()))
}

func TestConcurrentTicksRunOnce(t *testing.T) {
	is, ctx, svc, executor, _ := testSetup(t, nil)

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyHourly))
	is.NoErr(err)

	due := *a.NextRun

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.RunDue(ctx, due)
		}()
	}
	wg.Wait()

	is.Equal(1, len(executor.ExecuteCalls()))

	logs, err := svc.GetAutomationLogs(ctx, a.ID)
	is.NoErr(err)
	is.Equal(uint64(1), logs.Count)
}

func TestExecutorFailureIsLogged(t *testing.T) {
	executor := &ActionExecutorMock{ExecuteFunc: func(context.Context, types.Automation) error {
		return errors.New("webhook unreachable")
	}}
	is, ctx, svc, _, _ := testSetup(t, executor)

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyDaily))
	is.NoErr(err)

	entry, err := svc.RunAutomationNow(ctx, a.ID)
	is.NoErr(err)
	is.Equal(types.LogError, entry.Status)
	is.Equal("webhook unreachable", entry.Details)

	after, _ := svc.GetAutomation(ctx, a.ID)
	is.Equal(types.AutomationActive, after.Status)
}

func TestRunWithoutActionsIsAWarning(t *testing.T) {
	is, ctx, svc, executor, _ := testSetup(t, nil)

	a, err := svc.CreateAutomation(ctx, types.Automation{
		Name:    "empty",
		Trigger: types.Trigger{Type: types.TriggerEvent},
	})
	is.NoErr(err)
	is.True(a.NextRun == nil)

	entry, err := svc.RunAutomationNow(ctx, a.ID)
	is.NoErr(err)
	is.Equal(types.LogWarning, entry.Status)
	is.Equal(0, len(executor.ExecuteCalls()))

	after, _ := svc.GetAutomation(ctx, a.ID)
	is.True(after.LastRun != nil)
	is.True(after.NextRun == nil)
}

func TestRunNowMovesScheduleForward(t *testing.T) {
	is, ctx, svc, _, clock := testSetup(t, nil)

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyWeekly))
	is.NoErr(err)

	clock.now = clock.now.Add(24 * time.Hour)

	_, err = svc.RunAutomationNow(ctx, a.ID)
	is.NoErr(err)

	after, _ := svc.GetAutomation(ctx, a.ID)
	is.Equal(clock.now, *after.LastRun)
	is.Equal(clock.now.AddDate(0, 0, 7), *after.NextRun)

	_, err = svc.RunAutomationNow(ctx, "nosuchautomation")
	is.True(errors.Is(err, types.ErrNotFound))
}

func TestToggleAutomationStatus(t *testing.T) {
	is, ctx, svc, _, clock := testSetup(t, nil)

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyHourly))
	is.NoErr(err)

	paused, err := svc.ToggleAutomationStatus(ctx, a.ID, "")
	is.NoErr(err)
	is.Equal(types.AutomationPaused, paused.Status)
	is.True(paused.NextRun == nil)

	clock.now = clock.now.Add(3 * time.Hour)

	active, err := svc.ToggleAutomationStatus(ctx, a.ID, types.AutomationActive)
	is.NoErr(err)
	is.Equal(types.AutomationActive, active.Status)
	is.Equal(clock.now.Add(time.Hour), *active.NextRun)

	_, err = svc.ToggleAutomationStatus(ctx, a.ID, "running")
	is.True(errors.Is(err, types.ErrValidation))
}

func TestDeleteAutomation(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t, nil)

	system := scheduled("cleanup", types.FrequencyDaily)
	system.IsSystem = true
	s, err := svc.CreateAutomation(ctx, system)
	is.NoErr(err)

	err = svc.DeleteAutomation(ctx, s.ID)
	is.True(errors.Is(err, types.ErrValidation))

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyDaily))
	is.NoErr(err)
	is.NoErr(svc.DeleteAutomation(ctx, a.ID))

	err = svc.DeleteAutomation(ctx, a.ID)
	is.True(errors.Is(err, types.ErrNotFound))

	all, err := svc.GetAutomations(ctx, filter.AutomationSpec{})
	is.NoErr(err)
	is.Equal(uint64(1), all.Count)
}

func TestCreateAutomationValidation(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t, nil)

	invalid := []types.Automation{
		{Name: "", Trigger: types.Trigger{Type: types.TriggerEvent}},
		{Name: "no trigger"},
		{Name: "bad frequency", Trigger: types.Trigger{Type: types.TriggerSchedule, Config: map[string]any{"frequency": "yearly"}}},
		{Name: "bad status", Status: "running", Trigger: types.Trigger{Type: types.TriggerEvent}},
		{Name: "bad action", Trigger: types.Trigger{Type: types.TriggerEvent}, Actions: []types.Action{{}}},
	}

	for _, a := range invalid {
		_, err := svc.CreateAutomation(ctx, a)
		is.True(errors.Is(err, types.ErrValidation))
	}
}

func TestExecutionsArePublished(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	sink := &events.SinkMock{PublishFunc: func(context.Context, events.Message) error { return nil }}
	executor := &ActionExecutorMock{ExecuteFunc: func(context.Context, types.Automation) error { return nil }}
	svc := New(storage.NewInMemory[types.Automation](), storage.NewInMemory[types.AutomationLog](), executor, sink, nil)

	a, err := svc.CreateAutomation(ctx, scheduled("report", types.FrequencyDaily))
	is.NoErr(err)

	_, err = svc.RunAutomationNow(ctx, a.ID)
	is.NoErr(err)

	topics := []string{}
	for _, c := range sink.PublishCalls() {
		topics = append(topics, c.Msg.TopicName())
	}
	is.Equal([]string{"automation.created", "automation.updated", "automation.executed"}, topics)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func scheduled(name string, f types.Frequency) types.Automation {
	return types.Automation{
		Name:     name,
		Category: "reporting",
		Trigger: types.Trigger{
			Type:   types.TriggerSchedule,
			Config: map[string]any{"frequency": string(f)},
		},
		Actions: []types.Action{{Type: "log", Params: map[string]any{"message": "hello"}}},
		Status:  types.AutomationActive,
	}
}

func testSetup(t *testing.T, executor *ActionExecutorMock) (*is.I, context.Context, AutomationService, *ActionExecutorMock, *testClock) {
	is := is.New(t)
	clock := &testClock{now: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)}

	if executor == nil {
		executor = &ActionExecutorMock{ExecuteFunc: func(context.Context, types.Automation) error { return nil }}
	}

	svc := New(storage.NewInMemory[types.Automation](), storage.NewInMemory[types.AutomationLog](), executor, nil, clock.Now)

	return is, context.Background(), svc, executor, clock
}
