package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestBusDeliversToMatchingHandlers(t *testing.T) {
	is := is.New(t)
	bus := NewBus()
	defer bus.Close()

	var exact, prefix, all, other int
	bus.Subscribe("alert.statusChanged", func(context.Context, Message) { exact++ })
	bus.Subscribe("alert.*", func(context.Context, Message) { prefix++ })
	bus.Subscribe("*", func(context.Context, Message) { all++ })
	bus.Subscribe("automation.*", func(context.Context, Message) { other++ })

	err := bus.Publish(context.Background(), &types.AlertStatusChanged{AlertID: "a1"})
	is.NoErr(err)

	is.Equal(1, exact)
	is.Equal(1, prefix)
	is.Equal(1, all)
	is.Equal(0, other)
}

func TestBusForwardsToEverySink(t *testing.T) {
	is := is.New(t)

	ok := &SinkMock{PublishFunc: func(context.Context, Message) error { return nil }}
	failing := &SinkMock{PublishFunc: func(context.Context, Message) error { return errors.New("broker down") }}

	bus := NewBus(failing)
	bus.Attach(ok)

	err := bus.Publish(context.Background(), &types.EntityChanged{Entity: "rule", Operation: types.OperationCreated})
	is.NoErr(err)

	bus.Close()

	is.Equal(1, len(ok.PublishCalls()))
	is.Equal(1, len(failing.PublishCalls()))
	is.Equal("rule.created", ok.PublishCalls()[0].Msg.TopicName())
}

func TestSlowSinkDoesNotBlockPublish(t *testing.T) {
	is := is.New(t)

	release := make(chan struct{})
	slow := &SinkMock{PublishFunc: func(context.Context, Message) error {
		<-release
		return nil
	}}

	bus := NewBus(slow)

	published := make(chan struct{})
	go func() {
		defer close(published)
		bus.Publish(context.Background(), &types.EntityChanged{Entity: "alert", ID: "a1", Operation: types.OperationCreated})
		bus.Publish(context.Background(), &types.EntityChanged{Entity: "alert", ID: "a2", Operation: types.OperationCreated})
	}()

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("publish waited for a blocked sink")
	}

	close(release)
	bus.Close()

	is.Equal(2, len(slow.PublishCalls()))
	is.Equal("a2", slow.PublishCalls()[1].Msg.(*types.EntityChanged).ID)
}

func TestFullQueueDropsMessages(t *testing.T) {
	is := is.New(t)

	release := make(chan struct{})
	stuck := &SinkMock{PublishFunc: func(context.Context, Message) error {
		<-release
		return nil
	}}

	bus := NewBus(stuck)

	var err error
	for i := 0; i < queueSize+2 && err == nil; i++ {
		err = bus.Publish(context.Background(), &types.EntityChanged{Entity: "alert", Operation: types.OperationUpdated})
	}

	is.True(errors.Is(err, ErrQueueFull))

	close(release)
	bus.Close()
}

func TestPublishAfterCloseFails(t *testing.T) {
	is := is.New(t)

	bus := NewBus(Discard)
	bus.Close()

	err := bus.Publish(context.Background(), &types.EntityChanged{Entity: "alert", Operation: types.OperationDeleted})
	is.True(errors.Is(err, ErrClosed))
}

func TestTopicSinkPublishesOnMessageTopic(t *testing.T) {
	is := is.New(t)

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	sink := NewTopicSink(messenger)

	msg := &types.AlertStatusChanged{AlertID: "a1", OldStatus: types.AlertStatusNew, NewStatus: types.AlertStatusAcknowledged}
	err := sink.Publish(context.Background(), msg)
	is.NoErr(err)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))

	published := messenger.PublishOnTopicCalls()[0].Message
	is.Equal("alert.statusChanged", published.TopicName())
	is.Equal("application/json", published.ContentType())

	b, err := json.Marshal(published)
	is.NoErr(err)
	is.Equal(string(msg.Body()), string(b))
}

func TestTopicSinkReturnsBrokerErrors(t *testing.T) {
	is := is.New(t)

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return errors.New("channel closed")
		},
	}

	err := NewTopicSink(messenger).Publish(context.Background(), &types.EntityChanged{Entity: "rule"})
	is.True(err != nil)
}
