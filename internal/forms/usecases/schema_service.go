package usecases

//go:generate mockgen -source=./schema_service.go -destination=../../../test/unit/doubles/forms/usecases/schema_service_mock.go -package=usecases -mock_names=SchemaService=MockSchemaService

import (
	"context"
	"errors"
	"fmt"
	"formbuilder-server/internal/forms/domain"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"slices"
	"sync"
)

// SchemaService manages the saved-schema collection.
type SchemaService interface {
	ListSchemas(ctx context.Context) ([]domain.FormSchema, error)
	GetSchema(ctx context.Context, id shareddomain.ID) (domain.FormSchema, error)
	AddSchema(ctx context.Context, schema domain.FormSchema) error
	DeleteSchema(ctx context.Context, id shareddomain.ID) error
	CheckIntegrity(ctx context.Context, id shareddomain.ID) ([]domain.IntegrityError, error)
}

func NewSchemaService(repository SchemaRepository) *SimpleSchemaService {
	initMetrics()
	return &SimpleSchemaService{
		repository: repository,
	}
}

var _ SchemaService = (*SimpleSchemaService)(nil)

// SimpleSchemaService serialises read-modify-write cycles on the collection.
type SimpleSchemaService struct {
	mu         sync.Mutex
	repository SchemaRepository
}

func (s *SimpleSchemaService) ListSchemas(ctx context.Context) ([]domain.FormSchema, error) {
	schemas, err := s.repository.LoadAll(ctx)
	if err != nil {
		slog.Error("listing schemas", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing schemas: %w", err)
	}

	return schemas, nil
}

func (s *SimpleSchemaService) GetSchema(ctx context.Context, id shareddomain.ID) (domain.FormSchema, error) {
	schemas, err := s.repository.LoadAll(ctx)
	if err != nil {
		slog.Error("getting schema", slog.String("error", err.Error()))
		return domain.FormSchema{}, fmt.Errorf("getting schema: %w", err)
	}

	idx := slices.IndexFunc(schemas, func(schema domain.FormSchema) bool {
		return schema.ID == id
	})
	if idx < 0 {
		return domain.FormSchema{}, ErrSchemaNotFound
	}

	return schemas[idx], nil
}

func (s *SimpleSchemaService) AddSchema(ctx context.Context, schema domain.FormSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schemas, err := s.repository.LoadAll(ctx)
	if err != nil {
		slog.Error("loading schemas", slog.String("error", err.Error()))
		return fmt.Errorf("loading schemas: %w", err)
	}

	err = s.repository.StoreAll(ctx, append(schemas, schema))
	if err != nil {
		slog.Error("storing schemas", slog.String("error", err.Error()))
		return fmt.Errorf("storing schemas: %w", err)
	}

	return nil
}

func (s *SimpleSchemaService) DeleteSchema(ctx context.Context, id shareddomain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schemas, err := s.repository.LoadAll(ctx)
	if err != nil {
		slog.Error("loading schemas", slog.String("error", err.Error()))
		return fmt.Errorf("loading schemas: %w", err)
	}

	remaining := slices.DeleteFunc(slices.Clone(schemas), func(schema domain.FormSchema) bool {
		return schema.ID == id
	})
	if len(remaining) == len(schemas) {
		return ErrSchemaNotFound
	}

	err = s.repository.StoreAll(ctx, remaining)
	if err != nil {
		slog.Error("storing schemas", slog.String("error", err.Error()))
		return fmt.Errorf("storing schemas: %w", err)
	}

	schemasDeletedTotal.Add(ctx, 1)
	slog.Info("schema deleted", slog.String("schema_id", id.String()))

	return nil
}

func (s *SimpleSchemaService) CheckIntegrity(ctx context.Context, id shareddomain.ID) ([]domain.IntegrityError, error) {
	schema, err := s.GetSchema(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSchemaNotFound) {
			return nil, ErrSchemaNotFound
		}
		return nil, err
	}

	return domain.ValidateSchemaIntegrity(schema), nil
}
