package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application"
	"github.com/diwise/alert-mgmt/internal/pkg/application/filter"
	"github.com/diwise/alert-mgmt/internal/pkg/presentation/api/auth"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/api")

// RegisterHandlers mounts the health endpoint and the /api/v0 routes on
// router. When tokenAuth is nil the api routes are served without
// authentication or authorization. A non nil stream is served as the
// server sent event endpoint /api/v0/events.
func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, app application.App, stream http.Handler, tokenAuth *jwtauth.JWTAuth) (*chi.Mux, error) {
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	var authorizer auth.Authorizer
	if tokenAuth != nil {
		var err error
		authorizer, err = auth.NewAuthorizer(ctx, policies)
		if err != nil {
			return nil, fmt.Errorf("failed to create api authorizer: %w", err)
		}
	} else {
		log.Warn().Msg("no token verifier configured, api is served without authentication")
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if tokenAuth != nil {
				r.Use(jwtauth.Verifier(tokenAuth))
				r.Use(authorizer.Authorize)
			}

			if stream != nil {
				r.Get("/events", stream.ServeHTTP)
			}

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, app))
				r.Post("/", createAlertHandler(log, app))
				r.Get("/{alertID}", getAlertHandler(log, app))
				r.Patch("/{alertID}", patchAlertHandler(log, app))
			})

			r.Route("/rules", func(r chi.Router) {
				r.Get("/", getRulesHandler(log, app))
				r.Post("/", createRuleHandler(log, app))
				r.Post("/natural-language", createNaturalLanguageRuleHandler(log, app))
				r.Post("/parse", parseNaturalLanguageHandler(log, app))
				r.Patch("/{ruleID}", patchRuleHandler(log, app))
				r.Delete("/{ruleID}", deleteRuleHandler(log, app))
			})

			r.Route("/automations", func(r chi.Router) {
				r.Get("/", queryAutomationsHandler(log, app))
				r.Post("/", createAutomationHandler(log, app))
				r.Patch("/{automationID}", patchAutomationHandler(log, app))
				r.Delete("/{automationID}", deleteAutomationHandler(log, app))
				r.Post("/{automationID}/run", runAutomationHandler(log, app))
				r.Get("/{automationID}/logs", getAutomationLogsHandler(log, app))
			})
		})
	})

	return router, nil
}

func queryAlertsHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		q := r.URL.Query()

		spec := filter.Spec{
			Severity:    asEnums[types.Severity](queryValues(q["severity"])),
			Status:      asEnums[types.AlertStatus](queryValues(q["status"])),
			Departments: queryValues(q["department"]),
			Search:      q.Get("search"),
			TimeRange:   filter.TimeRange(q.Get("timeRange")),
		}

		result, err := app.FilterAlerts(ctx, spec)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to filter alerts")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NewApiResponse(result).Byte())
	}
}

func createAlertHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var alert types.Alert
		err = readBody(r, &alert)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		created, err := app.CreateAlert(ctx, alert)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to create alert")
			writeError(w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/v0/alerts/%s", created.ID))
		writeJSON(w, http.StatusCreated, ApiResponse{Data: created}.Byte())
	}
}

func getAlertHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		alert, err := app.GetAlert(ctx, alertID)
		if err != nil {
			requestLogger.Debug().Err(err).Str("alert_id", alertID).Msg("unable to get alert")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: alert}.Byte())
	}
}

func patchAlertHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-alert-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		var patch statusPatch
		err = readBody(r, &patch)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		snooze := time.Duration(patch.SnoozeMinutes) * time.Minute

		alert, err := app.UpdateAlertStatus(ctx, alertID, patch.Status, patch.Actor, patch.Comment, snooze)
		if err != nil {
			requestLogger.Error().Err(err).Str("alert_id", alertID).Str("status", string(patch.Status)).Msg("unable to update alert status")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: alert}.Byte())
	}
}

func getRulesHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-rules")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		rules, err := app.GetRules(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to get rules")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NewApiResponse(rules).Byte())
	}
}

func createRuleHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var rule types.AlertRule
		err = readBody(r, &rule)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		created, err := app.CreateRule(ctx, rule)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to create rule")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: created}.Byte())
	}
}

func createNaturalLanguageRuleHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-natural-language-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var body naturalLanguage
		err = readBody(r, &body)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		created, err := app.CreateNaturalLanguageRule(ctx, body.Text)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to create rule from text")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: created}.Byte())
	}
}

func parseNaturalLanguageHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		_, span := tracer.Start(r.Context(), "parse-natural-language")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, r.Context())

		var body naturalLanguage
		err = readBody(r, &body)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: app.ParseNaturalLanguage(body.Text)}.Byte())
	}
}

func patchRuleHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		ruleID := chi.URLParam(r, "ruleID")

		fields := map[string]any{}
		err = readBody(r, &fields)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		rule, err := app.UpdateRule(ctx, ruleID, fields)
		if err != nil {
			requestLogger.Error().Err(err).Str("rule_id", ruleID).Msg("unable to update rule")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: rule}.Byte())
	}
}

func deleteRuleHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		ruleID := chi.URLParam(r, "ruleID")

		err = app.DeleteRule(ctx, ruleID)
		if err != nil {
			requestLogger.Error().Err(err).Str("rule_id", ruleID).Msg("unable to delete rule")
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryAutomationsHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-automations")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		q := r.URL.Query()

		spec := filter.AutomationSpec{
			Status:     asEnums[types.AutomationStatus](queryValues(q["status"])),
			Categories: queryValues(q["category"]),
			Search:     q.Get("search"),
		}

		result, err := app.GetAutomations(ctx, spec)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to get automations")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NewApiResponse(result).Byte())
	}
}

func createAutomationHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-automation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var automation types.Automation
		err = readBody(r, &automation)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		created, err := app.CreateAutomation(ctx, automation)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to create automation")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: created}.Byte())
	}
}

func patchAutomationHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "toggle-automation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		automationID := chi.URLParam(r, "automationID")

		var patch automationPatch
		err = readBody(r, &patch)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, err)
			return
		}

		automation, err := app.ToggleAutomationStatus(ctx, automationID, patch.Status)
		if err != nil {
			requestLogger.Error().Err(err).Str("automation_id", automationID).Msg("unable to change automation status")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: automation}.Byte())
	}
}

func deleteAutomationHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-automation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		automationID := chi.URLParam(r, "automationID")

		err = app.DeleteAutomation(ctx, automationID)
		if err != nil {
			requestLogger.Error().Err(err).Str("automation_id", automationID).Msg("unable to delete automation")
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func runAutomationHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "run-automation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		automationID := chi.URLParam(r, "automationID")

		entry, err := app.RunAutomationNow(ctx, automationID)
		if err != nil {
			requestLogger.Error().Err(err).Str("automation_id", automationID).Msg("unable to run automation")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: entry}.Byte())
	}
}

func getAutomationLogsHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-automation-logs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		automationID := chi.URLParam(r, "automationID")

		logs, err := app.GetAutomationLogs(ctx, automationID)
		if err != nil {
			requestLogger.Error().Err(err).Str("automation_id", automationID).Msg("unable to get automation logs")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NewApiResponse(logs).Byte())
	}
}

func readBody(r *http.Request, v any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrValidation, err.Error())
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrValidation, err.Error())
	}

	return nil
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFromError(err)
	writeJSON(w, code, ApiError{
		Status: code,
		Title:  http.StatusText(code),
		Detail: err.Error(),
	}.Byte())
}

// queryValues flattens repeated and comma separated query values.
func queryValues(values []string) []string {
	result := []string{}
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				result = append(result, s)
			}
		}
	}
	return result
}

func asEnums[E ~string](values []string) []E {
	result := make([]E, 0, len(values))
	for _, v := range values {
		result = append(result, E(v))
	}
	return result
}
