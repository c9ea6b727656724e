package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/forms/usecases/repository_port_mock.go -package=usecases -mock_names=SchemaRepository=MockSchemaRepository

import (
	"context"
	"errors"
	"formbuilder-server/internal/forms/domain"
)

var (
	ErrSchemaNotFound      = errors.New("schema not found")
	ErrMalformedCollection = errors.New("malformed schema collection")
	ErrSchemaIntegrity     = errors.New("schema integrity violation")
)

// SchemaRepository reads and writes the saved-schema collection as a whole.
// A missing collection loads as empty.
type SchemaRepository interface {
	LoadAll(ctx context.Context) ([]domain.FormSchema, error)
	StoreAll(ctx context.Context, schemas []domain.FormSchema) error
}
