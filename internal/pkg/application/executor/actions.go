package executor

import (
	"context"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// NewLogHandler writes the message of the action to the service log.
func NewLogHandler() Handler {
	return HandlerFunc(func(ctx context.Context, automation types.Automation, action types.Action) error {
		log := logging.GetFromContext(ctx)

		msg := param(action, "message")
		if msg == "" {
			msg = action.Description
		}

		log.Info().
			Str("automation_id", automation.ID).
			Str("automation", automation.Name).
			Msg(msg)

		return nil
	})
}

// NewNotifyHandler publishes a notification for each executed notify action.
func NewNotifyHandler(sink events.Sink, clock func() time.Time) Handler {
	return HandlerFunc(func(ctx context.Context, automation types.Automation, action types.Action) error {
		params := map[string]string{}
		for k := range action.Params {
			params[k] = param(action, k)
		}

		msg := param(action, "message")
		if msg == "" {
			msg = action.Description
		}
		if msg == "" {
			msg = automation.Name
		}

		return sink.Publish(ctx, &types.Notification{
			AutomationID: automation.ID,
			Channel:      param(action, "channel"),
			Recipient:    param(action, "recipient"),
			Message:      msg,
			Params:       params,
			Timestamp:    clock(),
		})
	})
}
