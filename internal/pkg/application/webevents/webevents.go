package webevents

import (
	"context"
	stdlog "log"
	"net/http"
	"strings"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/rs/zerolog"
)

// WebEvents forwards published messages to browsers connected as server
// sent event listeners. Each message is sent with its topic as event name.
type WebEvents interface {
	events.Sink
	http.Handler
	Shutdown()
}

type webEvents struct {
	s *gosse.Server
}

func New(logger zerolog.Logger) WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{
			Logger: stdlog.New(debugWriter{logger.With().Str("component", "webevents").Logger()}, "", 0),
			Headers: map[string]string{
				"Cache-Control": "no-cache",
			},
		}),
	}
}

func (we *webEvents) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	we.s.ServeHTTP(w, r)
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(_ context.Context, msg events.Message) error {
	if we.s.ClientCount() == 0 {
		return nil
	}

	message := gosse.NewMessage("", string(msg.Body()), msg.TopicName())
	we.s.SendMessage("", message)
	return nil
}

// debugWriter logs every line written by the sse server at debug level.
type debugWriter struct {
	logger zerolog.Logger
}

func (w debugWriter) Write(p []byte) (int, error) {
	w.logger.Debug().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}
