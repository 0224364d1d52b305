package entities

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	is, ctx, store, sink := testSetup(t, fixedClock())

	alert, err := store.Create(ctx, types.Alert{Title: "Revenue drop"})
	is.NoErr(err)

	is.True(alert.ID != "")
	is.Equal(alert.CreatedAt, alert.UpdatedAt)
	is.Equal(1, len(sink.PublishCalls()))
	is.Equal("alert.created", sink.PublishCalls()[0].Msg.TopicName())
}

func TestCreateWithExistingIDFails(t *testing.T) {
	is, ctx, store, _ := testSetup(t, fixedClock())

	_, err := store.Create(ctx, types.Alert{Meta: types.Meta{ID: "a1"}})
	is.NoErr(err)

	_, err = store.Create(ctx, types.Alert{Meta: types.Meta{ID: "a1"}})
	is.True(errors.Is(err, types.ErrDuplicateID))
}

func TestListIsMostRecentFirst(t *testing.T) {
	is, ctx, store, _ := testSetup(t, fixedClock())

	for _, id := range []string{"a1", "a2", "a3"} {
		_, err := store.Create(ctx, types.Alert{Meta: types.Meta{ID: id}})
		is.NoErr(err)
	}

	alerts, err := store.List(ctx)
	is.NoErr(err)
	is.Equal("a3", alerts[0].ID)
	is.Equal("a1", alerts[2].ID)
}

func TestUpdateWithEmptyPatchOnlyMovesUpdatedAt(t *testing.T) {
	is, ctx, store, _ := testSetup(t, fixedClock())

	created, err := store.Create(ctx, types.Alert{
		Title:      "Revenue drop",
		Severity:   types.SeverityHigh,
		Status:     types.AlertStatusNew,
		Department: "sales",
		Metadata:   map[string]string{"region": "north"},
	})
	is.NoErr(err)

	updated, err := store.Update(ctx, created.ID, MergePatch[types.Alert](map[string]any{}))
	is.NoErr(err)

	is.True(updated.UpdatedAt.After(created.UpdatedAt))

	updated.UpdatedAt = created.UpdatedAt
	is.Equal(created, updated)

	again, err := store.Update(ctx, created.ID, nil)
	is.NoErr(err)
	is.True(again.UpdatedAt.After(created.UpdatedAt.Add(time.Nanosecond)))
}

func TestUpdateCanNotChangeIdentity(t *testing.T) {
	is, ctx, store, _ := testSetup(t, fixedClock())

	created, err := store.Create(ctx, types.Alert{Title: "t"})
	is.NoErr(err)

	updated, err := store.Update(ctx, created.ID, MergePatch[types.Alert](map[string]any{
		"id":        "other",
		"createdAt": "2001-01-01T00:00:00Z",
		"title":     "changed",
	}))
	is.NoErr(err)

	is.Equal(created.ID, updated.ID)
	is.Equal(created.CreatedAt, updated.CreatedAt)
	is.Equal("changed", updated.Title)
}

func TestFailedPatchLeavesEntityUnchanged(t *testing.T) {
	is, ctx, store, sink := testSetup(t, fixedClock())

	created, err := store.Create(ctx, types.Alert{Title: "t"})
	is.NoErr(err)

	_, err = store.Update(ctx, created.ID, func(a *types.Alert) error {
		a.Title = "changed"
		return types.ErrValidation
	})
	is.True(errors.Is(err, types.ErrValidation))

	fromStore, err := store.Get(ctx, created.ID)
	is.NoErr(err)
	is.Equal(created, fromStore)
	is.Equal(1, len(sink.PublishCalls()))
}

func TestUpdateUnknownIsNotFound(t *testing.T) {
	is, ctx, store, _ := testSetup(t, fixedClock())

	_, err := store.Update(ctx, "nosuchalert", nil)
	is.True(errors.Is(err, types.ErrNotFound))
}

func TestDeleteTwiceFails(t *testing.T) {
	is, ctx, store, sink := testSetup(t, fixedClock())

	created, err := store.Create(ctx, types.Alert{})
	is.NoErr(err)

	is.NoErr(store.Delete(ctx, created.ID))

	err = store.Delete(ctx, created.ID)
	is.True(errors.Is(err, types.ErrNotFound))

	is.Equal(2, len(sink.PublishCalls()))
	is.Equal("alert.deleted", sink.PublishCalls()[1].Msg.TopicName())
}

func TestSinkFailureIsNotReturned(t *testing.T) {
	is := is.New(t)
	sink := &events.SinkMock{PublishFunc: func(context.Context, events.Message) error {
		return errors.New("unreachable")
	}}
	store := New[types.Alert]("alert", storage.NewInMemory[types.Alert](), sink, nil)

	_, err := store.Create(context.Background(), types.Alert{})
	is.NoErr(err)
}

func TestMergePatchRejectsBadTypes(t *testing.T) {
	is := is.New(t)

	alert := types.Alert{Title: "t"}
	err := MergePatch[types.Alert](map[string]any{"title": 17})(&alert)

	is.True(errors.Is(err, types.ErrValidation))
	is.Equal("t", alert.Title)
}

func TestBlockedSinkDoesNotHoldUpOtherMutations(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	sink := &events.SinkMock{PublishFunc: func(_ context.Context, msg events.Message) error {
		if msg.(*types.EntityChanged).ID == "a1" {
			once.Do(func() { close(entered) })
			<-release
		}
		return nil
	}}

	store := New[types.Alert]("alert", storage.NewInMemory[types.Alert](), sink, fixedClock())

	first := make(chan error, 1)
	go func() {
		_, err := store.Create(ctx, types.Alert{Meta: types.Meta{ID: "a1"}})
		first <- err
	}()

	<-entered

	second := make(chan error, 1)
	go func() {
		_, err := store.Create(ctx, types.Alert{Meta: types.Meta{ID: "a2"}})
		second <- err
	}()

	select {
	case err := <-second:
		is.NoErr(err)
	case <-time.After(2 * time.Second):
		t.Fatal("second create waited for the blocked sink")
	}

	close(release)
	is.NoErr(<-first)

	all, err := store.List(ctx)
	is.NoErr(err)
	is.Equal(2, len(all))
}

func fixedClock() Clock {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func testSetup(t *testing.T, clock Clock) (*is.I, context.Context, *Store[types.Alert, *types.Alert], *events.SinkMock) {
	is := is.New(t)
	sink := &events.SinkMock{PublishFunc: func(context.Context, events.Message) error { return nil }}
	store := New[types.Alert]("alert", storage.NewInMemory[types.Alert](), sink, clock)
	return is, context.Background(), store, sink
}
