package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/alert-mgmt/internal/pkg/infrastructure/storage"
	"gorm.io/gorm"
)

// document stores one entity as JSON. Seq preserves insertion order so that
// List can return the most recently added entity first.
type document struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	EntityID  string `gorm:"column:entity_id;not null;uniqueIndex:idx_documents_type_entity"`
	Type      string `gorm:"not null;uniqueIndex:idx_documents_type_entity"`
	Data      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (document) TableName() string {
	return "documents"
}

type documentRepository[T any] struct {
	db       *gorm.DB
	typeName string
}

// Migrate creates or updates the schema used by the document repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&document{})
}

// NewRepository returns a storage.Repository that keeps entities of typeName
// as JSON documents in db.
func NewRepository[T any](db *gorm.DB, typeName string) (storage.Repository[T], error) {
	if typeName == "" {
		return nil, fmt.Errorf("no type name given")
	}

	err := Migrate(db)
	if err != nil {
		return nil, err
	}

	return &documentRepository[T]{
		db:       db,
		typeName: typeName,
	}, nil
}

func (r *documentRepository[T]) Add(ctx context.Context, id string, t T) error {
	if id == "" {
		return storage.ErrNoID
	}

	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&document{}).
			Where("entity_id = ? AND type = ?", id, r.typeName).
			Count(&count).
			Error
		if err != nil {
			return err
		}

		if count > 0 {
			return storage.ErrAlreadyExist
		}

		return tx.Create(&document{
			EntityID: id,
			Type:     r.typeName,
			Data:     string(data),
		}).Error
	})
}

func (r *documentRepository[T]) Get(ctx context.Context, id string) (T, error) {
	doc := document{}

	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND type = ?", id, r.typeName).
		First(&doc).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return *new(T), storage.ErrNotFound
		}
		return *new(T), err
	}

	return mapOne[T](doc)
}

func (r *documentRepository[T]) Save(ctx context.Context, id string, t T) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&document{}).
		Where("entity_id = ? AND type = ?", id, r.typeName).
		Updates(map[string]any{
			"data":       string(data),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *documentRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("entity_id = ? AND type = ?", id, r.typeName).
		Delete(&document{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *documentRepository[T]) List(ctx context.Context) ([]T, error) {
	var docs []document

	err := r.db.WithContext(ctx).
		Where("type = ?", r.typeName).
		Order("seq DESC").
		Find(&docs).
		Error
	if err != nil {
		return nil, err
	}

	return mapAll[T](docs)
}

func mapOne[T any](doc document) (T, error) {
	t := *new(T)
	err := json.Unmarshal([]byte(doc.Data), &t)
	return t, err
}

func mapAll[T any](docs []document) ([]T, error) {
	var errs []error
	m := make([]T, 0, len(docs))
	for _, d := range docs {
		t, err := mapOne[T](d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m = append(m, t)
	}
	return m, errors.Join(errs...)
}
