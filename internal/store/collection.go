package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
)

// Collection is a keyed persistent set of records of one type. GetAll order
// is unspecified; callers must not depend on it. Each operation is atomic on
// its own, nothing more.
type Collection[T any] struct {
	db  *gorm.DB
	key string
}

func newCollection[T any](db *gorm.DB, key string) *Collection[T] {
	return &Collection[T]{db: db, key: key}
}

// GetAll returns every record in the collection.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, apperror.Store("getAll", err)
	}
	return out, nil
}

// Get returns the record for key, or apperror.ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, key any) (*T, error) {
	var rec T
	err := c.db.WithContext(ctx).First(&rec, fmt.Sprintf("%s = ?", c.key), key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, apperror.Store("get", err)
	}
	return &rec, nil
}

// Add inserts rec, assigning the key when zero-valued and failing when an
// explicit key collides with an existing record.
func (c *Collection[T]) Add(ctx context.Context, rec *T) error {
	if err := c.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperror.Store("add", err)
	}
	return nil
}

// Put upserts rec by its key.
func (c *Collection[T]) Put(ctx context.Context, rec *T) error {
	if err := c.db.WithContext(ctx).Save(rec).Error; err != nil {
		return apperror.Store("put", err)
	}
	return nil
}

// Delete removes the record for key. Deleting an absent key is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, key any) error {
	var zero T
	err := c.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", c.key), key).Delete(&zero).Error
	if err != nil {
		return apperror.Store("delete", err)
	}
	return nil
}

// Clear removes every record in the collection.
func (c *Collection[T]) Clear(ctx context.Context) error {
	var zero T
	err := c.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error
	if err != nil {
		return apperror.Store("clear", err)
	}
	return nil
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	var zero T
	var n int64
	if err := c.db.WithContext(ctx).Model(&zero).Count(&n).Error; err != nil {
		return 0, apperror.Store("count", err)
	}
	return n, nil
}
