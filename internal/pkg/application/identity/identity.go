package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/go-chi/jwtauth/v5"
)

type actorContextKey struct {
	name string
}

var actorCtxKey = &actorContextKey{"actor"}

// ClaimNames are the token claims that may name the current actor, in order
// of preference.
var ClaimNames = []string{"preferred_username", "name", "email", "sub"}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorCtxKey).(string)
	return actor, ok && actor != ""
}

// Verified reports whether ctx carries a bearer token that passed
// verification.
func Verified(ctx context.Context) bool {
	token, _, err := jwtauth.FromContext(ctx)
	return err == nil && token != nil
}

type ActorProvider interface {
	Actor(ctx context.Context) (string, error)
}

type provider struct{}

// NewProvider returns an ActorProvider that uses an actor stored with
// WithActor, or else the claims of a verified bearer token.
func NewProvider() ActorProvider {
	return provider{}
}

func (provider) Actor(ctx context.Context) (string, error) {
	if actor, ok := ActorFromContext(ctx); ok {
		return actor, nil
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err == nil && claims != nil {
		for _, name := range ClaimNames {
			if v, ok := claims[name].(string); ok && strings.TrimSpace(v) != "" {
				return v, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no actor found in request", types.ErrValidation)
}

type fixed string

// Static returns an ActorProvider that always answers with actor.
func Static(actor string) ActorProvider {
	return fixed(actor)
}

func (f fixed) Actor(context.Context) (string, error) {
	if f == "" {
		return "", fmt.Errorf("%w: no actor", types.ErrValidation)
	}
	return string(f), nil
}
