package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrUnknownAction = errors.New("unknown action type")

type Handler interface {
	Handle(ctx context.Context, automation types.Automation, action types.Action) error
}

type HandlerFunc func(ctx context.Context, automation types.Automation, action types.Action) error

func (f HandlerFunc) Handle(ctx context.Context, automation types.Automation, action types.Action) error {
	return f(ctx, automation, action)
}

// Registry executes the actions of an automation by dispatching each of them
// to the handler registered for its type.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// New returns a Registry with the webhook, notify and log actions registered.
func New(cfg *Config, sink events.Sink, clock func() time.Time) (*Registry, error) {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	webhook, err := NewWebhookHandler(cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("could not create webhook handler: %w", err)
	}

	r := NewRegistry()
	r.Register("webhook", webhook)
	r.Register("notify", NewNotifyHandler(sink, clock))
	r.Register("log", NewLogHandler())

	return r, nil
}

func (r *Registry) Register(actionType string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[actionType] = h
}

// Execute runs every action in order. A failing action does not stop the
// ones after it, all failures are reported together.
func (r *Registry) Execute(ctx context.Context, automation types.Automation) error {
	log := logging.GetFromContext(ctx)

	var errs []error

	for i, action := range automation.Actions {
		r.mu.RLock()
		h, ok := r.handlers[action.Type]
		r.mu.RUnlock()

		if !ok {
			errs = append(errs, fmt.Errorf("action %d: %w %q", i, ErrUnknownAction, action.Type))
			continue
		}

		if err := h.Handle(ctx, automation, action); err != nil {
			errs = append(errs, fmt.Errorf("action %d (%s): %w", i, action.Type, err))
			continue
		}

		log.Debug().Str("automation_id", automation.ID).Str("action", action.Type).Msg("action executed")
	}

	return errors.Join(errs...)
}

func param(action types.Action, key string) string {
	if action.Params == nil {
		return ""
	}
	if s, ok := action.Params[key].(string); ok {
		return s
	}
	if v, ok := action.Params[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
