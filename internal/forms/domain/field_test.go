package domain_test

import (
	"formbuilder-server/internal/forms/domain"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field", func() {
	Context("NewFieldBuilder", func() {
		When("building a plain text field", func() {
			It("should assign an id and default to text", func() {
				field, err := domain.NewFieldBuilder().
					WithLabel("Name").
					WithRequired(true).
					Build()

				Expect(err).NotTo(HaveOccurred())
				Expect(field.ID).NotTo(BeEmpty())
				Expect(field.Type).To(Equal(domain.FieldTypeText))
				Expect(field.ValidationRules).To(BeEmpty())
				Expect(field.IsDerived()).To(BeFalse())
			})
		})

		When("the type is unknown", func() {
			It("should fail with ErrUnknownFieldType", func() {
				_, err := domain.NewFieldBuilder().
					WithType(domain.FieldType("slider")).
					WithLabel("Volume").
					Build()

				Expect(err).To(MatchError(domain.ErrUnknownFieldType))
			})
		})

		When("the label is blank", func() {
			It("should fail with ErrEmptyLabel", func() {
				_, err := domain.NewFieldBuilder().WithLabel("   ").Build()
				Expect(err).To(MatchError(domain.ErrEmptyLabel))
			})
		})

		When("a length rule has no value", func() {
			It("should fail with ErrMissingRuleValue", func() {
				_, err := domain.NewFieldBuilder().
					WithLabel("Bio").
					WithValidationRule(domain.RuleTypeMinLength, nil, "too short").
					Build()

				Expect(err).To(MatchError(domain.ErrMissingRuleValue))
			})
		})

		When("a derived field lists itself as parent", func() {
			It("should fail with ErrDerivedSelfParent", func() {
				_, err := domain.NewFieldBuilder().
					WithID("total").
					WithType(domain.FieldTypeNumber).
					WithLabel("Total").
					WithDerivation("Total + 1", shareddomain.ID("total")).
					Build()

				Expect(err).To(MatchError(domain.ErrDerivedSelfParent))
			})
		})

		When("building a select field without options", func() {
			It("should carry an empty option set", func() {
				field, err := domain.NewFieldBuilder().
					WithType(domain.FieldTypeSelect).
					WithLabel("Country").
					Build()

				Expect(err).NotTo(HaveOccurred())
				Expect(field.Options).NotTo(BeNil())
				Expect(field.Options).To(BeEmpty())
			})
		})
	})

	Context("FieldType", func() {
		It("should recognise every supported type", func() {
			for _, t := range domain.FieldTypes {
				Expect(t.IsValid()).To(BeTrue(), string(t))
			}
			Expect(domain.FieldType("file").IsValid()).To(BeFalse())
		})

		It("should require options only for select and radio", func() {
			Expect(domain.FieldTypeSelect.RequiresOptions()).To(BeTrue())
			Expect(domain.FieldTypeRadio.RequiresOptions()).To(BeTrue())
			Expect(domain.FieldTypeCheckbox.RequiresOptions()).To(BeFalse())
		})
	})
})
