package usecases

//go:generate mockgen -source=./preview_service.go -destination=../../../test/unit/doubles/forms/usecases/preview_service_mock.go -package=usecases -mock_names=PreviewService=MockPreviewService

import (
	"context"
	"errors"
	"fmt"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/domain"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrNoActiveSession = errors.New("no active preview session")

// DraftSource supplies the unsaved draft for preview.
type DraftSource interface {
	PreviewDraft(ctx context.Context) domain.FormSchema
}

// PreviewService owns the single active fill session. Opening a session
// discards the previous one.
type PreviewService interface {
	OpenSession(ctx context.Context, schemaID shareddomain.ID) (SessionView, error)
	OpenDraftSession(ctx context.Context) (SessionView, error)
	ActiveSession(ctx context.Context) (SessionView, error)
	SetValue(ctx context.Context, fieldID shareddomain.ID, value any) (SessionView, error)
	Submit(ctx context.Context) (SubmitResult, error)
	CloseSession(ctx context.Context)
}

func NewPreviewService(schemas SchemaService, drafts DraftSource, evaluator *derived.Evaluator) *SimplePreviewService {
	initMetrics()
	return &SimplePreviewService{
		schemas:   schemas,
		drafts:    drafts,
		evaluator: evaluator,
	}
}

var _ PreviewService = (*SimplePreviewService)(nil)

type SimplePreviewService struct {
	mu        sync.Mutex
	schemas   SchemaService
	drafts    DraftSource
	evaluator *derived.Evaluator
	session   *Session
}

func (s *SimplePreviewService) OpenSession(ctx context.Context, schemaID shareddomain.ID) (SessionView, error) {
	schema, err := s.schemas.GetSchema(ctx, schemaID)
	if err != nil {
		if errors.Is(err, ErrSchemaNotFound) {
			return SessionView{}, ErrSchemaNotFound
		}
		return SessionView{}, fmt.Errorf("opening session: %w", err)
	}

	return s.open(schema)
}

func (s *SimplePreviewService) OpenDraftSession(ctx context.Context) (SessionView, error) {
	return s.open(s.drafts.PreviewDraft(ctx))
}

func (s *SimplePreviewService) ActiveSession(_ context.Context) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SessionView{}, ErrNoActiveSession
	}
	return s.session.View(), nil
}

func (s *SimplePreviewService) SetValue(_ context.Context, fieldID shareddomain.ID, value any) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SessionView{}, ErrNoActiveSession
	}
	if err := s.session.SetValue(fieldID, value); err != nil {
		return SessionView{}, err
	}
	return s.session.View(), nil
}

func (s *SimplePreviewService) Submit(ctx context.Context) (SubmitResult, error) {
	ctx, span := otel.Tracer("formbuilder_server").Start(ctx, "submit_preview")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SubmitResult{}, ErrNoActiveSession
	}

	result := s.session.Submit()

	outcome := "success"
	if !result.Success() {
		outcome = "failure"
	}
	submissionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	slog.Info("preview submitted",
		slog.String("schema_id", s.session.Schema().ID.String()),
		slog.String("outcome", outcome),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

func (s *SimplePreviewService) CloseSession(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
}

// open checks schema integrity first. Every finding is logged; only a
// derivation cycle prevents the session from opening.
func (s *SimplePreviewService) open(schema domain.FormSchema) (SessionView, error) {
	findings := domain.ValidateSchemaIntegrity(schema)
	for _, finding := range findings {
		slog.Warn("schema integrity finding",
			slog.String("schema_id", schema.ID.String()),
			slog.String("field_id", finding.FieldID.String()),
			slog.String("kind", string(finding.Kind)),
			slog.String("detail", finding.Detail))
	}
	if err := CheckFillable(findings); err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = NewSession(schema, s.evaluator)
	return s.session.View(), nil
}

// CheckFillable fails with ErrSchemaIntegrity when the findings include a
// derivation cycle. Other findings never block a fill session.
func CheckFillable(findings []domain.IntegrityError) error {
	if !domain.HasKind(findings, domain.IntegrityDerivationCycle) {
		return nil
	}

	idx := slices.IndexFunc(findings, func(finding domain.IntegrityError) bool {
		return finding.Kind == domain.IntegrityDerivationCycle
	})
	return fmt.Errorf("%w: %s", ErrSchemaIntegrity, findings[idx].Detail)
}
