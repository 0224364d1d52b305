package events

import (
	"context"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

// NewTopicSink returns a Sink that publishes every message on the topic
// exchange of the message broker, using the topic name as routing key.
func NewTopicSink(messenger messaging.MsgContext) Sink {
	return &topicSink{messenger: messenger}
}

type topicSink struct {
	messenger messaging.MsgContext
}

func (s *topicSink) Publish(ctx context.Context, msg Message) error {
	return s.messenger.PublishOnTopic(ctx, topicMessage{msg})
}

// topicMessage makes the broker marshal the message body as is.
type topicMessage struct {
	Message
}

func (m topicMessage) MarshalJSON() ([]byte, error) {
	return m.Body(), nil
}
