package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/jwtauth/v5"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/authz")

// Authorizer checks verified request tokens against a rego policy.
type Authorizer interface {
	Authorize(next http.Handler) http.Handler
}

type impl struct {
	query rego.PreparedEvalQuery
}

// NewAuthorizer compiles the policy module read from policies. The module
// must define data.alertmgmt.authz.allow.
func NewAuthorizer(ctx context.Context, policies io.Reader) (Authorizer, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query("x = data.alertmgmt.authz.allow"),
		rego.Module("alertmgmt.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return &impl{query: query}, nil
}

// Authorize expects jwtauth.Verifier to have run before it. Requests without
// a valid token are rejected with 401, requests denied by the policy with 403.
func (a *impl) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		logger := logging.GetFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "check-auth")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		token, claims, err := jwtauth.FromContext(ctx)
		if err != nil || token == nil {
			if err == nil {
				err = errors.New("authorization header missing")
			}
			logger.Info().Err(err).Msg("request not authenticated")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		input := map[string]any{
			"method": r.Method,
			"path":   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
			"claims": claims,
		}

		results, err := a.query.Eval(ctx, rego.EvalInput(input))
		if err != nil {
			logger.Error().Err(err).Msg("opa eval failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if len(results) == 0 {
			err = errors.New("opa query could not be satisfied")
			logger.Error().Err(err).Msg("auth failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		allowed, ok := results[0].Bindings["x"].(bool)
		if !ok {
			err = errors.New("unexpected result type")
			logger.Error().Err(err).Msg("opa error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !allowed {
			err = errors.New("authorization failed")
			logger.Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg(err.Error())
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
