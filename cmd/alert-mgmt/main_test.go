package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/diwise/alert-mgmt/internal/pkg/application"
	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestSetup(t *testing.T) {
	is, server := testSetup(t, application.NewInMemoryRepositories())
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatGetUnknownAlertReturns404(t *testing.T) {
	is, server := testSetup(t, application.NewInMemoryRepositories())
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alerts/nosuchalert", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestAlertLifecycleWithDatabaseStorage(t *testing.T) {
	is := is.New(t)

	db, err := database.NewSQLiteConnector(context.Background())()
	is.NoErr(err)

	repos, err := newDatabaseRepositories(db)
	is.NoErr(err)

	is, server := testSetup(t, repos)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/alerts", strings.NewReader(`{"title":"Revenue drop","severity":"high","department":"sales","source":"monitor"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)

	created := struct {
		Data types.Alert `json:"data"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &created))
	is.Equal(types.AlertStatusNew, created.Data.Status)

	resp, _ = testRequest(is, server, http.MethodPatch, "/api/v0/alerts/"+created.Data.ID, strings.NewReader(`{"status":"acknowledged","actor":"alice"}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = testRequest(is, server, http.MethodPatch, "/api/v0/alerts/"+created.Data.ID, strings.NewReader(`{"status":"new","actor":"alice"}`))
	is.Equal(resp.StatusCode, http.StatusConflict)

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/alerts?status=acknowledged", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"acknowledgedBy":"alice"`))
}

func TestConfigurationFileIsSeeded(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg, err := loadConfiguration(ctx, "../../assets/config/alert-mgmt.yaml")
	is.NoErr(err)

	policies, err := os.Open("../../assets/config/authz.rego")
	is.NoErr(err)
	defer policies.Close()

	app, _, err := createAppAndSetupRouter(ctx, zerolog.Nop(), cfg, policies, application.NewInMemoryRepositories(), events.Discard, nil, nil)
	is.NoErr(err)

	rules, err := app.GetRules(ctx)
	is.NoErr(err)
	is.Equal(len(cfg.Rules), len(rules.Data))
}

func TestMissingConfigurationGivesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := loadConfiguration(context.Background(), "nosuchfile.yaml")
	is.NoErr(err)
	is.Equal(0, len(cfg.Rules))
}

func TestUnknownStorageType(t *testing.T) {
	is := is.New(t)

	_, err := newRepositories(context.Background(), "mongodb")
	is.True(err != nil)
}

func testSetup(t *testing.T, repos application.Repositories) (*is.I, *httptest.Server) {
	is := is.New(t)

	_, r, err := createAppAndSetupRouter(context.Background(), zerolog.Nop(), nil, strings.NewReader(""), repos, events.Discard, nil, nil)
	is.NoErr(err)

	return is, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}

func TestUnknownLogLevelFallsBackToInfo(t *testing.T) {
	is := is.New(t)

	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	setLogLevel("chatty")
	is.Equal(zerolog.InfoLevel, zerolog.GlobalLevel())

	setLogLevel("DEBUG")
	is.Equal(zerolog.DebugLevel, zerolog.GlobalLevel())
}
