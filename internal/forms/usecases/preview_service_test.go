package usecases_test

import (
	"context"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/usecases"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PreviewService", func() {
	var (
		ctx        context.Context
		repository *memorySchemaRepository
		builder    *usecases.SimpleBuilderService
		service    usecases.PreviewService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repository = newMemorySchemaRepository(orderSchema())
		schemas := usecases.NewSchemaService(repository)
		builder = usecases.NewBuilderService(schemas, nil)
		service = usecases.NewPreviewService(schemas, builder, derived.NewEvaluator(nil))
	})

	It("should have no session before one is opened", func() {
		_, err := service.ActiveSession(ctx)
		Expect(err).To(MatchError(usecases.ErrNoActiveSession))

		_, err = service.SetValue(ctx, "name", "Ada")
		Expect(err).To(MatchError(usecases.ErrNoActiveSession))

		_, err = service.Submit(ctx)
		Expect(err).To(MatchError(usecases.ErrNoActiveSession))
	})

	It("should open a saved schema", func() {
		view, err := service.OpenSession(ctx, "order")
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Schema).To(Equal(orderSchema()))
		Expect(view.Phase).To(Equal(usecases.PhaseFilling))
	})

	It("should report an unknown schema", func() {
		_, err := service.OpenSession(ctx, "missing")
		Expect(err).To(MatchError(usecases.ErrSchemaNotFound))
	})

	It("should fill and submit the active session", func() {
		_, _ = service.OpenSession(ctx, "order")

		view, err := service.SetValue(ctx, "qty", 4.0)
		Expect(err).NotTo(HaveOccurred())
		view, err = service.SetValue(ctx, "price", 3.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Values).To(HaveKeyWithValue(shareddomain.ID("total"), 12.0))

		result, err := service.Submit(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Errors).To(HaveKeyWithValue(shareddomain.ID("name"), "Name is required"))

		_, _ = service.SetValue(ctx, "name", "Ada")
		result, err = service.Submit(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Success()).To(BeTrue())

		active, _ := service.ActiveSession(ctx)
		Expect(active.Phase).To(Equal(usecases.PhaseSubmitted))
	})

	It("should start a fresh session every time a schema is opened", func() {
		_, _ = service.OpenSession(ctx, "order")
		_, _ = service.SetValue(ctx, "name", "Ada")
		_, _ = service.Submit(ctx)

		view, err := service.OpenSession(ctx, "order")
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Values).To(HaveKeyWithValue(shareddomain.ID("name"), ""))
		Expect(view.Errors).To(BeEmpty())
		Expect(view.Phase).To(Equal(usecases.PhaseFilling))
	})

	It("should preview the unsaved draft", func() {
		builder.SetName(ctx, "Draft")
		_, _ = builder.AddField(ctx, textField("Nickname"))

		view, err := service.OpenDraftSession(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Schema.ID).To(BeEmpty())
		Expect(view.Schema.Fields).To(HaveLen(1))
		Expect(view.Schema.Fields[0].Label).To(Equal("Nickname"))
	})

	It("should refuse a schema with a derivation cycle", func() {
		repository.schemas = append(repository.schemas, domain.FormSchema{ID: "loop", Name: "Loop", Fields: []domain.Field{
			{ID: "a", Type: domain.FieldTypeNumber, Label: "a", DerivedConfig: &domain.DerivedFieldConfig{IsDerived: true, ParentFields: []shareddomain.ID{"b"}, Formula: "b + 1"}},
			{ID: "b", Type: domain.FieldTypeNumber, Label: "b", DerivedConfig: &domain.DerivedFieldConfig{IsDerived: true, ParentFields: []shareddomain.ID{"a"}, Formula: "a + 1"}},
		}})

		_, err := service.OpenSession(ctx, "loop")
		Expect(err).To(MatchError(usecases.ErrSchemaIntegrity))
	})

	It("should tolerate softer integrity findings", func() {
		repository.schemas = append(repository.schemas, domain.FormSchema{ID: "soft", Name: "Soft", Fields: []domain.Field{
			{ID: "pick", Type: domain.FieldTypeSelect, Label: "pick"},
			{ID: "echo", Type: domain.FieldTypeText, Label: "echo", DerivedConfig: &domain.DerivedFieldConfig{IsDerived: true, ParentFields: []shareddomain.ID{"gone"}, Formula: "gone concat"}},
		}})

		view, err := service.OpenSession(ctx, "soft")
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Values).To(HaveKeyWithValue(shareddomain.ID("echo"), ""))
	})

	It("should drop the session when closed", func() {
		_, _ = service.OpenSession(ctx, "order")
		service.CloseSession(ctx)

		_, err := service.ActiveSession(ctx)
		Expect(err).To(MatchError(usecases.ErrNoActiveSession))
	})
})

type memorySchemaRepository struct {
	schemas []domain.FormSchema
}

func newMemorySchemaRepository(schemas ...domain.FormSchema) *memorySchemaRepository {
	return &memorySchemaRepository{schemas: schemas}
}

func (m *memorySchemaRepository) LoadAll(_ context.Context) ([]domain.FormSchema, error) {
	return append([]domain.FormSchema(nil), m.schemas...), nil
}

func (m *memorySchemaRepository) StoreAll(_ context.Context, schemas []domain.FormSchema) error {
	m.schemas = append([]domain.FormSchema(nil), schemas...)
	return nil
}

var _ = Describe("CheckFillable", func() {
	It("should pass when no cycle is reported", func() {
		findings := []domain.IntegrityError{{FieldID: "pick", Kind: domain.IntegrityMissingOptions, Detail: "no options"}}
		Expect(usecases.CheckFillable(findings)).To(Succeed())
		Expect(usecases.CheckFillable(nil)).To(Succeed())
	})

	It("should carry the detail of the first cycle", func() {
		findings := []domain.IntegrityError{
			{FieldID: "pick", Kind: domain.IntegrityMissingOptions, Detail: "no options"},
			{FieldID: "a", Kind: domain.IntegrityDerivationCycle, Detail: "a -> b -> a"},
			{FieldID: "c", Kind: domain.IntegrityDerivationCycle, Detail: "c -> c"},
		}

		err := usecases.CheckFillable(findings)
		Expect(err).To(MatchError(usecases.ErrSchemaIntegrity))
		Expect(err.Error()).To(HaveSuffix("a -> b -> a"))
	})
})
