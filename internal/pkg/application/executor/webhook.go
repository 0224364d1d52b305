package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"
)

const WebhookEventType = "alert-mgmt.automation.action"

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

type webhook struct {
	client      cloudevents.Client
	subscribers map[string][]SubscriberConfig
	now         func() time.Time
}

// NewWebhookHandler sends a CloudEvent to the url given in the params of the
// action, or to every subscriber configured for the event type when the
// action has no url.
func NewWebhookHandler(cfg *Config, clock func() time.Time) (Handler, error) {
	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, err
	}

	w := &webhook{
		client:      c,
		subscribers: make(map[string][]SubscriberConfig),
		now:         clock,
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			w.subscribers[n.Type] = append(w.subscribers[n.Type], n.Subscribers...)
		}
	}

	return w, nil
}

func (w *webhook) Handle(ctx context.Context, automation types.Automation, action types.Action) error {
	eventType := param(action, "type")
	if eventType == "" {
		eventType = WebhookEventType
	}

	endpoints := []string{}
	if url := param(action, "url"); url != "" {
		endpoints = append(endpoints, url)
	} else {
		for _, s := range w.subscribers[eventType] {
			endpoints = append(endpoints, s.Endpoint)
		}
	}

	if len(endpoints) == 0 {
		return fmt.Errorf("%w: webhook action has no url and no subscribers for %s", types.ErrValidation, eventType)
	}

	timestamp := w.now()

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", automation.ID, timestamp.UnixNano()))
	event.SetTime(timestamp)
	event.SetSource("github.com/diwise/alert-mgmt")
	event.SetType(eventType)

	eventData := struct {
		AutomationID   string         `json:"automationId"`
		AutomationName string         `json:"automationName"`
		Action         string         `json:"action"`
		Params         map[string]any `json:"params,omitempty"`
		Timestamp      string         `json:"timestamp"`
	}{
		AutomationID:   automation.ID,
		AutomationName: automation.Name,
		Action:         action.Type,
		Params:         action.Params,
		Timestamp:      timestamp.Format(time.RFC3339Nano),
	}

	err := event.SetData(cloudevents.ApplicationJSON, eventData)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	var errs []error

	for _, endpoint := range endpoints {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, endpoint)

		result := w.client.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, result))
		} else if !cloudevents.IsACK(result) {
			logger.Warn().Err(result).Msgf("event was not accepted by %s", endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, result))
		}
	}

	return errors.Join(errs...)
}
