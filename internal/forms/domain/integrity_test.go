package domain_test

import (
	"formbuilder-server/internal/forms/domain"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func derivedField(id, label, formula string, parents ...shareddomain.ID) domain.Field {
	return domain.Field{
		ID:    shareddomain.ID(id),
		Type:  domain.FieldTypeNumber,
		Label: label,
		DerivedConfig: &domain.DerivedFieldConfig{
			IsDerived:    true,
			ParentFields: parents,
			Formula:      formula,
		},
	}
}

func kindsOf(errs []domain.IntegrityError) []domain.IntegrityErrorKind {
	result := make([]domain.IntegrityErrorKind, len(errs))
	for i, e := range errs {
		result[i] = e.Kind
	}
	return result
}

var _ = Describe("ValidateSchemaIntegrity", func() {
	When("the schema is well formed", func() {
		It("should report nothing", func() {
			schema := domain.FormSchema{
				Name: "Order",
				Fields: []domain.Field{
					{ID: "price", Type: domain.FieldTypeNumber, Label: "price"},
					{ID: "qty", Type: domain.FieldTypeNumber, Label: "qty"},
					derivedField("total", "total", "price * qty", "price", "qty"),
					{ID: "size", Type: domain.FieldTypeRadio, Label: "size", Options: []domain.SelectOption{{Label: "S", Value: "s"}, {Label: "M", Value: "m"}}},
				},
			}
			Expect(domain.ValidateSchemaIntegrity(schema)).To(BeEmpty())
		})
	})

	When("a parent id does not resolve", func() {
		It("should report unresolved_parent", func() {
			schema := domain.FormSchema{Fields: []domain.Field{
				derivedField("total", "total", "price * 2", "price"),
			}}
			errs := domain.ValidateSchemaIntegrity(schema)
			Expect(kindsOf(errs)).To(Equal([]domain.IntegrityErrorKind{domain.IntegrityUnresolvedParent}))
			Expect(errs[0].FieldID).To(Equal(shareddomain.ID("total")))
		})
	})

	When("a derived field references itself", func() {
		It("should report self_reference and no cycle", func() {
			schema := domain.FormSchema{Fields: []domain.Field{
				derivedField("total", "total", "total + 1", "total"),
			}}
			Expect(kindsOf(domain.ValidateSchemaIntegrity(schema))).To(Equal([]domain.IntegrityErrorKind{domain.IntegritySelfReference}))
		})
	})

	When("option sets are empty or repeat values", func() {
		It("should report missing and duplicate options", func() {
			schema := domain.FormSchema{Fields: []domain.Field{
				{ID: "country", Type: domain.FieldTypeSelect, Label: "country"},
				{ID: "size", Type: domain.FieldTypeRadio, Label: "size", Options: []domain.SelectOption{
					{Label: "Small", Value: "s"}, {Label: "Smaller", Value: "s"}, {Label: "Smallest", Value: "s"},
				}},
				{ID: "notes", Type: domain.FieldTypeText, Label: "notes", Options: []domain.SelectOption{{Value: "x"}, {Value: "x"}}},
			}}
			errs := domain.ValidateSchemaIntegrity(schema)
			Expect(kindsOf(errs)).To(Equal([]domain.IntegrityErrorKind{
				domain.IntegrityMissingOptions,
				domain.IntegrityDuplicateOptionValue,
			}))
			Expect(errs[1].FieldID).To(Equal(shareddomain.ID("size")))
		})
	})

	When("two derived fields depend on each other", func() {
		It("should report a derivation cycle", func() {
			schema := domain.FormSchema{Fields: []domain.Field{
				derivedField("a", "A", "B + 1", "b"),
				derivedField("b", "B", "A + 1", "a"),
			}}
			errs := domain.ValidateSchemaIntegrity(schema)
			Expect(kindsOf(errs)).To(Equal([]domain.IntegrityErrorKind{domain.IntegrityDerivationCycle}))
			Expect(errs[0].FieldID).To(Equal(shareddomain.ID("b")))
			Expect(errs[0].Detail).To(Equal("A -> B -> A"))
			Expect(domain.HasKind(errs, domain.IntegrityDerivationCycle)).To(BeTrue())
		})
	})

	When("a longer chain closes on itself", func() {
		It("should report the cycle once", func() {
			schema := domain.FormSchema{Fields: []domain.Field{
				{ID: "base", Type: domain.FieldTypeNumber, Label: "base"},
				derivedField("a", "A", "C + base", "c", "base"),
				derivedField("b", "B", "A * 2", "a"),
				derivedField("c", "C", "B * 2", "b"),
			}}
			errs := domain.ValidateSchemaIntegrity(schema)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Kind).To(Equal(domain.IntegrityDerivationCycle))
		})
	})
})
