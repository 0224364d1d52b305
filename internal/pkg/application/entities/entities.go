package entities

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/application/events"
	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/alert-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// Entity is satisfied by pointers to types embedding types.Meta.
type Entity[T any] interface {
	*T
	GetMeta() *types.Meta
}

// PatchFunc mutates an entity in place. Returning an error aborts the update
// and leaves the stored entity untouched.
type PatchFunc[T any] func(*T) error

type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

// Store owns identity, timestamps and change notification for one kind of
// entity. All mutations are serialized, change notifications are sent after
// the mutation has been stored.
type Store[T any, P Entity[T]] struct {
	mu     sync.Mutex
	entity string
	repo   storage.Repository[T]
	sink   events.Sink
	now    Clock
}

func New[T any, P Entity[T]](entity string, repo storage.Repository[T], sink events.Sink, clock Clock) *Store[T, P] {
	if sink == nil {
		sink = events.Discard
	}
	if clock == nil {
		clock = SystemClock
	}

	return &Store[T, P]{
		entity: entity,
		repo:   repo,
		sink:   sink,
		now:    clock,
	}
}

func (s *Store[T, P]) Create(ctx context.Context, t T) (T, error) {
	t, err := s.create(ctx, t)
	if err != nil {
		return *new(T), err
	}

	meta := P(&t).GetMeta()
	s.publish(ctx, meta.ID, types.OperationCreated, meta.CreatedAt)

	return t, nil
}

func (s *Store[T, P]) create(ctx context.Context, t T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := P(&t).GetMeta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}

	now := s.now()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	err := s.repo.Add(ctx, meta.ID, t)
	if err != nil {
		return *new(T), fmt.Errorf("could not create %s %s: %w", s.entity, meta.ID, err)
	}

	return t, nil
}

func (s *Store[T, P]) Get(ctx context.Context, id string) (T, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return *new(T), fmt.Errorf("could not fetch %s %s: %w", s.entity, id, err)
	}
	return t, nil
}

func (s *Store[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Update applies patch to the stored entity. The id and createdAt of the
// entity can not be changed and updatedAt always moves forward, even when the
// clock has not.
func (s *Store[T, P]) Update(ctx context.Context, id string, patch PatchFunc[T]) (T, error) {
	t, err := s.update(ctx, id, patch)
	if err != nil {
		return *new(T), err
	}

	s.publish(ctx, id, types.OperationUpdated, P(&t).GetMeta().UpdatedAt)

	return t, nil
}

func (s *Store[T, P]) update(ctx context.Context, id string, patch PatchFunc[T]) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return *new(T), fmt.Errorf("could not update %s %s: %w", s.entity, id, err)
	}

	before := *P(&t).GetMeta()

	if patch != nil {
		if err = patch(&t); err != nil {
			return *new(T), err
		}
	}

	meta := P(&t).GetMeta()
	meta.ID = before.ID
	meta.CreatedAt = before.CreatedAt
	meta.UpdatedAt = next(before.UpdatedAt, s.now())

	err = s.repo.Save(ctx, id, t)
	if err != nil {
		return *new(T), fmt.Errorf("could not save %s %s: %w", s.entity, id, err)
	}

	return t, nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, id, types.OperationDeleted, s.now())

	return nil
}

func (s *Store[T, P]) delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete %s %s: %w", s.entity, id, err)
	}

	return nil
}

func (s *Store[T, P]) Now() time.Time {
	return s.now()
}

func (s *Store[T, P]) publish(ctx context.Context, id string, op types.Operation, ts time.Time) {
	err := s.sink.Publish(ctx, &types.EntityChanged{
		Entity:    s.entity,
		ID:        id,
		Operation: op,
		Timestamp: ts,
	})
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("entity", s.entity).Str("id", id).Msg("failed to publish change")
	}
}

func next(previous, now time.Time) time.Time {
	if now.After(previous) {
		return now
	}
	return previous.Add(time.Nanosecond)
}

// MergePatch returns a PatchFunc that merges the given fields over the json
// representation of the entity.
func MergePatch[T any](fields map[string]any) PatchFunc[T] {
	return func(t *T) error {
		if len(fields) == 0 {
			return nil
		}

		b, err := json.Marshal(t)
		if err != nil {
			return err
		}

		current := map[string]any{}
		if err = json.Unmarshal(b, &current); err != nil {
			return err
		}

		for k, v := range fields {
			if v == nil {
				delete(current, k)
				continue
			}
			current[k] = v
		}

		b, err = json.Marshal(current)
		if err != nil {
			return err
		}

		patched := *new(T)
		if err = json.Unmarshal(b, &patched); err != nil {
			return fmt.Errorf("%w: %s", types.ErrValidation, err.Error())
		}

		*t = patched
		return nil
	}
}
