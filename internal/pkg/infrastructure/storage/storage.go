package storage

import (
	"context"
	"fmt"

	"github.com/diwise/alert-mgmt/pkg/types"
)

var (
	ErrNotFound     = fmt.Errorf("entity %w", types.ErrNotFound)
	ErrAlreadyExist = fmt.Errorf("entity already exists: %w", types.ErrDuplicateID)
	ErrNoID         = fmt.Errorf("entity contains no id: %w", types.ErrValidation)
)

// Repository is the persistence contract for one kind of entity, keyed by id.
//
// List returns entities most recent first: an entity added later is listed
// before one added earlier, and Save never changes an entity's position.
type Repository[T any] interface {
	Add(ctx context.Context, id string, t T) error
	Get(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, id string, t T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]T, error)
}
