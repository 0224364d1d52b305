package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestRequestContextCarriesLogger(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	r := New("alert-mgmt", zerolog.New(buf))
	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		log := logging.GetFromContext(req.Context())
		log.Info().Msg("pong")
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	is.Equal(http.StatusNoContent, w.Code)
	is.True(strings.Contains(buf.String(), "pong"))
}

func TestPreflightAllowsPatch(t *testing.T) {
	is := is.New(t)

	r := New("alert-mgmt", zerolog.Nop())
	r.Patch("/alerts/{id}", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/alerts/a1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.Equal(http.MethodPatch, w.Header().Get("Access-Control-Allow-Methods"))
}
