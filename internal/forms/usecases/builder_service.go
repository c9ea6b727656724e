package usecases

//go:generate mockgen -source=./builder_service.go -destination=../../../test/unit/doubles/forms/usecases/builder_service_mock.go -package=usecases -mock_names=BuilderService=MockBuilderService

import (
	"context"
	"fmt"
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/infra/utils"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
)

// BuilderService edits the single in-progress draft and freezes it into a
// saved schema.
type BuilderService interface {
	Draft(ctx context.Context) domain.DraftView
	SetName(ctx context.Context, name string) domain.DraftView
	AddField(ctx context.Context, field domain.Field) (domain.Field, error)
	UpdateField(ctx context.Context, index int, field domain.Field) error
	DeleteField(ctx context.Context, index int) error
	ReorderFields(ctx context.Context, from, to int) error
	AvailableParents(ctx context.Context, fieldID shareddomain.ID) []domain.Field
	ClearDraft(ctx context.Context)
	PreviewDraft(ctx context.Context) domain.FormSchema
	Save(ctx context.Context) (domain.FormSchema, bool, error)
}

func NewBuilderService(schemas SchemaService, clock utils.Clock) *SimpleBuilderService {
	initMetrics()
	if clock == nil {
		clock = utils.SystemClock()
	}
	return &SimpleBuilderService{
		draft:   domain.NewDraft(),
		schemas: schemas,
		now:     clock,
	}
}

var _ BuilderService = (*SimpleBuilderService)(nil)

type SimpleBuilderService struct {
	mu      sync.Mutex
	draft   *domain.Draft
	schemas SchemaService
	now     utils.Clock
}

func (s *SimpleBuilderService) Draft(_ context.Context) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft.View()
}

func (s *SimpleBuilderService) SetName(_ context.Context, name string) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.SetName(name)
	return s.draft.View()
}

func (s *SimpleBuilderService) AddField(_ context.Context, field domain.Field) (domain.Field, error) {
	if err := field.Validate(); err != nil {
		return domain.Field{}, fmt.Errorf("adding field: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.draft.AddField(field)
	if err != nil {
		return domain.Field{}, fmt.Errorf("adding field: %w", err)
	}

	slog.Debug("field added to draft",
		slog.String("field_id", added.ID.String()),
		slog.String("type", string(added.Type)))

	return added, nil
}

func (s *SimpleBuilderService) UpdateField(_ context.Context, index int, field domain.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.CheckIndex(index); err != nil {
		return fmt.Errorf("updating field: %w", err)
	}
	if err := field.Validate(); err != nil {
		return fmt.Errorf("updating field: %w", err)
	}
	if err := s.draft.UpdateField(index, field); err != nil {
		return fmt.Errorf("updating field: %w", err)
	}
	return nil
}

func (s *SimpleBuilderService) DeleteField(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.DeleteField(index); err != nil {
		return fmt.Errorf("deleting field: %w", err)
	}
	return nil
}

func (s *SimpleBuilderService) ReorderFields(_ context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.Reorder(from, to); err != nil {
		return fmt.Errorf("reordering fields: %w", err)
	}
	return nil
}

// AvailableParents lists the draft fields a field may derive from.
func (s *SimpleBuilderService) AvailableParents(_ context.Context, fieldID shareddomain.ID) []domain.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Field, 0, s.draft.Len())
	for _, field := range s.draft.Fields() {
		if field.ID != fieldID {
			result = append(result, field)
		}
	}
	return result
}

func (s *SimpleBuilderService) ClearDraft(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Reset()
}

func (s *SimpleBuilderService) PreviewDraft(_ context.Context) domain.FormSchema {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft.Preview()
}

// Save freezes the draft, appends it to the saved collection and resets the
// draft. It reports false without touching the store when the draft has a
// blank name or no fields. The draft is kept when the store write fails.
func (s *SimpleBuilderService) Save(ctx context.Context) (domain.FormSchema, bool, error) {
	ctx, span := otel.Tracer("formbuilder_server").Start(ctx, "save_draft")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.draft.IsSavable() {
		slog.Debug("draft not saved, name or fields missing")
		return domain.FormSchema{}, false, nil
	}

	schema := s.draft.Freeze(shareddomain.ID(utils.GenerateUUID()), s.now().UTC().Truncate(time.Millisecond))
	if err := s.schemas.AddSchema(ctx, schema); err != nil {
		slog.Error("saving draft", slog.String("error", err.Error()))
		return domain.FormSchema{}, false, fmt.Errorf("saving draft: %w", err)
	}

	s.draft.Reset()
	schemasSavedTotal.Add(ctx, 1)
	slog.Info("schema saved",
		slog.String("schema_id", schema.ID.String()),
		slog.String("name", schema.Name.String()),
		slog.Int("fields", len(schema.Fields)))

	return schema, true, nil
}
