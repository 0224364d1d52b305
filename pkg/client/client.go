package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

//go:generate moq -rm -out client_mock.go . AlertMgmtClient

type AlertMgmtClient interface {
	CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error)
	GetAlert(ctx context.Context, alertID string) (types.Alert, error)
	QueryAlerts(ctx context.Context, params ...QueryOption) ([]types.Alert, error)
	UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, comment string) (types.Alert, error)
	CreateRuleFromText(ctx context.Context, text string) (types.AlertRule, error)
	RunAutomation(ctx context.Context, automationID string) (types.AutomationLog, error)
	Close(ctx context.Context)
}

type alertMgmtClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("alert-mgmt-client")

// New returns a client for the alert management api at alertMgmtURL. When
// oauthTokenURL is empty requests are sent without an access token.
func New(ctx context.Context, alertMgmtURL, oauthTokenURL, oauthClientID, oauthClientSecret string) (AlertMgmtClient, error) {
	var transport http.RoundTripper = http.DefaultTransport

	if oauthTokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     oauthClientID,
			ClientSecret: oauthClientSecret,
			TokenURL:     oauthTokenURL,
		}

		token, err := oauthConfig.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthConfig.TokenURL, err)
		}

		if !token.Valid() {
			return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
		}

		transport = &oauth2.Transport{
			Source: oauth2.ReuseTokenSource(token, oauthConfig.TokenSource(ctx)),
			Base:   http.DefaultTransport,
		}
	}

	return &alertMgmtClient{
		url: strings.TrimSuffix(alertMgmtURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(transport),
		},
	}, nil
}

func (c *alertMgmtClient) CreateAlert(ctx context.Context, alert types.Alert) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	created := types.Alert{}
	err = c.do(ctx, http.MethodPost, "/api/v0/alerts", alert, &created, types.ErrDuplicateID)

	return created, err
}

func (c *alertMgmtClient) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	alert := types.Alert{}
	err = c.do(ctx, http.MethodGet, "/api/v0/alerts/"+url.PathEscape(alertID), nil, &alert, types.ErrDuplicateID)

	return alert, err
}

type QueryOption func(v url.Values)

func WithSeverity(severity ...types.Severity) QueryOption {
	return func(v url.Values) {
		for _, s := range severity {
			v.Add("severity", string(s))
		}
	}
}

func WithStatus(status ...types.AlertStatus) QueryOption {
	return func(v url.Values) {
		for _, s := range status {
			v.Add("status", string(s))
		}
	}
}

func WithDepartment(department ...string) QueryOption {
	return func(v url.Values) {
		for _, d := range department {
			v.Add("department", d)
		}
	}
}

func WithSearch(search string) QueryOption {
	return func(v url.Values) {
		v.Set("search", search)
	}
}

func WithTimeRange(timeRange string) QueryOption {
	return func(v url.Values) {
		v.Set("timeRange", timeRange)
	}
}

func (c *alertMgmtClient) QueryAlerts(ctx context.Context, params ...QueryOption) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	query := url.Values{}
	for _, p := range params {
		p(query)
	}

	path := "/api/v0/alerts"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	alerts := []types.Alert{}
	err = c.do(ctx, http.MethodGet, path, nil, &alerts, types.ErrDuplicateID)

	return alerts, err
}

func (c *alertMgmtClient) UpdateAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, comment string) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-alert-status")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := map[string]any{
		"status":  status,
		"comment": comment,
	}

	alert := types.Alert{}
	err = c.do(ctx, http.MethodPatch, "/api/v0/alerts/"+url.PathEscape(alertID), body, &alert, types.ErrInvalidTransition)

	return alert, err
}

func (c *alertMgmtClient) CreateRuleFromText(ctx context.Context, text string) (types.AlertRule, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-rule-from-text")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rule := types.AlertRule{}
	err = c.do(ctx, http.MethodPost, "/api/v0/rules/natural-language", map[string]string{"text": text}, &rule, types.ErrDuplicateID)

	return rule, err
}

func (c *alertMgmtClient) RunAutomation(ctx context.Context, automationID string) (types.AutomationLog, error) {
	var err error
	ctx, span := tracer.Start(ctx, "run-automation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	entry := types.AutomationLog{}
	err = c.do(ctx, http.MethodPost, "/api/v0/automations/"+url.PathEscape(automationID)+"/run", nil, &entry, types.ErrDuplicateID)

	return entry, err
}

func (c *alertMgmtClient) Close(ctx context.Context) {
	c.httpClient.CloseIdleConnections()
}

// do sends body as json and decodes the data member of the response into
// result. A 409 response is reported as conflict.
func (c *alertMgmtClient) do(ctx context.Context, method, path string, body, result any, conflict error) error {
	log := logging.GetFromContext(ctx)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errorFromStatus(resp.StatusCode, conflict)
		log.Debug().Str("method", method).Str("path", path).Int("status_code", resp.StatusCode).Msg("request failed")

		detail := struct {
			Detail string `json:"detail"`
		}{}
		if json.Unmarshal(respBody, &detail) == nil && detail.Detail != "" {
			return fmt.Errorf("%w (%s)", err, detail.Detail)
		}

		return err
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}

	err = json.Unmarshal(respBody, &envelope)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	err = json.Unmarshal(envelope.Data, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return nil
}

var errUnexpectedStatus = errors.New("unexpected response status")

func errorFromStatus(code int, conflict error) error {
	switch code {
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusConflict:
		return conflict
	case http.StatusBadRequest:
		return types.ErrValidation
	default:
		return fmt.Errorf("%w %d", errUnexpectedStatus, code)
	}
}
