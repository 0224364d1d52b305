package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Message is anything that can be published on a topic.
type Message interface {
	ContentType() string
	TopicName() string
	Body() []byte
}

//go:generate moq -rm -out sink_mock.go . Sink
type Sink interface {
	Publish(ctx context.Context, msg Message) error
}

type HandlerFunc func(ctx context.Context, msg Message)

const queueSize = 256

var (
	ErrQueueFull = errors.New("sink queue is full")
	ErrClosed    = errors.New("bus is closed")
)

type delivery struct {
	ctx context.Context
	msg Message
}

// Bus delivers every published message to the handlers subscribed to its
// topic, then queues it for the attached sinks. A subscription on "*"
// receives all messages, and one ending in ".*" receives every topic with
// that prefix.
//
// Handlers run on the publishing goroutine. Each sink is fed from its own
// queue so a slow sink never holds up a publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
	queues   []chan delivery
	closed   bool
	wg       sync.WaitGroup
}

func NewBus(sinks ...Sink) *Bus {
	b := &Bus{
		handlers: make(map[string][]HandlerFunc),
	}

	for _, s := range sinks {
		b.Attach(s)
	}

	return b
}

func (b *Bus) Subscribe(topic string, h HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *Bus) Attach(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	queue := make(chan delivery, queueSize)
	b.queues = append(b.queues, queue)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for d := range queue {
			if err := s.Publish(d.ctx, d.msg); err != nil {
				log := logging.GetFromContext(d.ctx)
				log.Warn().Err(err).Str("topic", d.msg.TopicName()).Msg("sink failed to publish message")
			}
		}
	}()
}

// Publish returns once the handlers have run and the message has been queued
// for every sink. A sink whose queue is full misses the message.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	b.mu.RLock()
	handlers := []HandlerFunc{}
	for pattern, hs := range b.handlers {
		if matches(pattern, msg.TopicName()) {
			handlers = append(handlers, hs...)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, msg)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	d := delivery{ctx: context.WithoutCancel(ctx), msg: msg}

	var errs []error
	for _, queue := range b.queues {
		select {
		case queue <- d:
		default:
			errs = append(errs, fmt.Errorf("%w, dropped %s", ErrQueueFull, msg.TopicName()))
		}
	}

	return errors.Join(errs...)
}

// Close stops accepting messages and waits for the sinks to drain their
// queues.
func (b *Bus) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		for _, queue := range b.queues {
			close(queue)
		}
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func matches(pattern, topic string) bool {
	if pattern == "*" || pattern == topic {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(topic, prefix+".")
	}
	return false
}

type discard struct{}

func (discard) Publish(context.Context, Message) error { return nil }

// Discard is a Sink that drops every message.
var Discard Sink = discard{}
