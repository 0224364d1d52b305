package application

import (
	"context"
	"encoding/json"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const AlertRaisedTopic = "alert.raised"

// NewAlertRaisedHandler creates alerts from messages published by external
// monitors.
func NewAlertRaisedHandler(a App) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		raised := struct {
			ID         string            `json:"id,omitempty"`
			RuleID     string            `json:"ruleId,omitempty"`
			Title      string            `json:"title"`
			Message    string            `json:"message"`
			Severity   types.Severity    `json:"severity"`
			Source     string            `json:"source"`
			Department string            `json:"department"`
			Metadata   map[string]string `json:"metadata,omitempty"`
		}{}

		err := json.Unmarshal(msg.Body, &raised)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		if raised.Source == "" {
			raised.Source = msg.AppId
		}

		alert, err := a.CreateAlert(ctx, types.Alert{
			Meta:       types.Meta{ID: raised.ID},
			RuleID:     raised.RuleID,
			Title:      raised.Title,
			Message:    raised.Message,
			Severity:   raised.Severity,
			Source:     raised.Source,
			Department: raised.Department,
			Metadata:   raised.Metadata,
		})
		if err != nil {
			logger.Error().Err(err).Str("title", raised.Title).Msg("failed to create alert")
			return
		}

		logger.Debug().Str("alert_id", alert.ID).Msg("alert created from message")
	}
}

// RegisterTopicMessageHandlers subscribes the application to the topics it
// consumes from the message broker.
func RegisterTopicMessageHandlers(messenger messaging.MsgContext, a App) {
	messenger.RegisterTopicMessageHandler(AlertRaisedTopic, NewAlertRaisedHandler(a))
}
