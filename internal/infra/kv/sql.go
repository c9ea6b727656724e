package kv

import (
	"context"
	"errors"
	"fmt"
	"formbuilder-server/internal/infra/kv/internal"
	"formbuilder-server/internal/infra/sql"
)

func NewSQLStore(orm sql.ORM) (*SQLStore, error) {
	err := orm.AutoMigrate(&internal.Entry{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SQLStore{orm: orm}, nil
}

var _ Store = (*SQLStore)(nil)

// SQLStore keeps every key as one row of the kv_entries table.
type SQLStore struct {
	orm sql.ORM
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entity internal.Entry
	err := s.orm.
		WithContext(ctx).
		First(&entity, "entry_key = ?", key).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting entry %s: %w", key, err)
	}

	return entity.Value, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	entity := internal.Entry{Key: key, Value: value}

	err := s.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving entry %s: %w", key, err)
	}

	return nil
}
