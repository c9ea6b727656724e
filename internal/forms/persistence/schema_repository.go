package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	formsDomain "formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/persistence/internal"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/infra/kv"
	"log/slog"
)

// DefaultNamespace is the key the whole saved-schema collection lives under.
const DefaultNamespace = "formBuilder_savedForms"

func NewSchemaRepository(store kv.Store, namespace string) *SimpleSchemaRepository {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &SimpleSchemaRepository{
		store:     store,
		namespace: namespace,
	}
}

var _ usecases.SchemaRepository = (*SimpleSchemaRepository)(nil)

// SimpleSchemaRepository stores the collection as one JSON array.
type SimpleSchemaRepository struct {
	store     kv.Store
	namespace string
}

func (r *SimpleSchemaRepository) LoadAll(ctx context.Context) ([]formsDomain.FormSchema, error) {
	data, err := r.store.Get(ctx, r.namespace)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []formsDomain.FormSchema{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading saved schemas: %w", err)
	}

	var entities []internal.FormSchema
	if err := json.Unmarshal(data, &entities); err != nil {
		slog.Error("saved schemas are not readable",
			slog.String("namespace", r.namespace),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", usecases.ErrMalformedCollection, err)
	}

	result := make([]formsDomain.FormSchema, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleSchemaRepository) StoreAll(ctx context.Context, schemas []formsDomain.FormSchema) error {
	entities := make([]internal.FormSchema, len(schemas))
	for i, schema := range schemas {
		entities[i] = internal.FromFormSchema(schema)
	}

	data, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("encoding saved schemas: %w", err)
	}

	if err := r.store.Put(ctx, r.namespace, data); err != nil {
		return fmt.Errorf("writing saved schemas: %w", err)
	}

	slog.Debug("saved schemas written",
		slog.String("namespace", r.namespace),
		slog.Int("count", len(schemas)))

	return nil
}
