package validation_test

import (
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/validation"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func fieldWithRules(rules ...domain.ValidationRule) domain.Field {
	return domain.Field{
		ID:              "f1",
		Type:            domain.FieldTypeText,
		Label:           "Field",
		ValidationRules: rules,
	}
}

func rule(ruleType domain.RuleType, value any, message string) domain.ValidationRule {
	return domain.ValidationRule{Type: ruleType, Value: value, Message: message}
}

var _ = Describe("Validate", func() {
	When("the field has no rules", func() {
		It("should accept anything", func() {
			Expect(validation.Validate(fieldWithRules(), nil)).To(Equal(validation.Valid()))
		})
	})

	Context("required", func() {
		field := fieldWithRules(rule(domain.RuleTypeRequired, nil, "required"))

		DescribeTable("empty values",
			func(value any) {
				Expect(validation.Validate(field, value)).To(Equal(validation.Invalid("required")))
			},
			Entry("nil", nil),
			Entry("empty string", ""),
			Entry("whitespace only", " \t\n"),
			Entry("unchecked checkbox", false),
			Entry("zero", float64(0)),
		)

		DescribeTable("present values",
			func(value any) {
				Expect(validation.Validate(field, value).Valid).To(BeTrue())
			},
			Entry("text", "Ada"),
			Entry("number", float64(42)),
			Entry("checked checkbox", true),
		)
	})

	Context("minLength and maxLength", func() {
		field := fieldWithRules(
			rule(domain.RuleTypeMinLength, float64(3), "too short"),
			rule(domain.RuleTypeMaxLength, "5", "too long"),
		)

		It("should check string length against both bounds", func() {
			Expect(validation.Validate(field, "ab")).To(Equal(validation.Invalid("too short")))
			Expect(validation.Validate(field, "abc").Valid).To(BeTrue())
			Expect(validation.Validate(field, "abcde").Valid).To(BeTrue())
			Expect(validation.Validate(field, "abcdef")).To(Equal(validation.Invalid("too long")))
		})

		It("should count characters, not bytes", func() {
			Expect(validation.Validate(field, "ñññññ").Valid).To(BeTrue())
		})

		It("should not check non-string values", func() {
			Expect(validation.Validate(field, float64(1)).Valid).To(BeTrue())
			Expect(validation.Validate(field, nil).Valid).To(BeTrue())
		})

		It("should skip a limit that is not numeric", func() {
			odd := fieldWithRules(rule(domain.RuleTypeMinLength, "many", "too short"))
			Expect(validation.Validate(odd, "a").Valid).To(BeTrue())
		})
	})

	Context("email", func() {
		field := fieldWithRules(rule(domain.RuleTypeEmail, nil, "bad email"))

		DescribeTable("shapes",
			func(value any, valid bool) {
				Expect(validation.Validate(field, value).Valid).To(Equal(valid))
			},
			Entry("empty is left to required", "", true),
			Entry("absent is left to required", nil, true),
			Entry("simple address", "ada@example.com", true),
			Entry("subdomain", "ada.lovelace@mail.example.co", true),
			Entry("missing at", "ada.example.com", false),
			Entry("two ats", "ada@@example.com", false),
			Entry("no dot after at", "ada@example", false),
			Entry("embedded space", "ada @example.com", false),
			Entry("non ascii", "adá@example.com", false),
		)
	})

	Context("password", func() {
		field := fieldWithRules(rule(domain.RuleTypePassword, nil, "weak password"))

		DescribeTable("strength",
			func(value any, valid bool) {
				Expect(validation.Validate(field, value).Valid).To(Equal(valid))
			},
			Entry("empty is left to required", "", true),
			Entry("eight characters with a digit", "secret12", true),
			Entry("too short", "abc1", false),
			Entry("long without digit", "correcthorse", false),
		)
	})

	Context("rule order", func() {
		It("should report the first failing rule and ignore later ones", func() {
			requiredFirst := fieldWithRules(
				rule(domain.RuleTypeRequired, nil, "required"),
				rule(domain.RuleTypeMinLength, float64(10), "too short"),
			)
			lengthFirst := fieldWithRules(
				rule(domain.RuleTypeMinLength, float64(10), "too short"),
				rule(domain.RuleTypeRequired, nil, "required"),
			)

			Expect(validation.Validate(requiredFirst, "")).To(Equal(validation.Invalid("required")))
			Expect(validation.Validate(lengthFirst, "")).To(Equal(validation.Invalid("too short")))
		})

		It("should let conflicting bounds fail on whichever comes first", func() {
			field := fieldWithRules(
				rule(domain.RuleTypeMaxLength, float64(2), "max"),
				rule(domain.RuleTypeMinLength, float64(4), "min"),
			)
			Expect(validation.Validate(field, "abc")).To(Equal(validation.Invalid("max")))
			Expect(validation.Validate(field, "a")).To(Equal(validation.Invalid("min")))
		})
	})

	When("the field is derived", func() {
		It("should be valid regardless of rules", func() {
			field := fieldWithRules(rule(domain.RuleTypeRequired, nil, "required"))
			field.DerivedConfig = &domain.DerivedFieldConfig{IsDerived: true}
			Expect(validation.Validate(field, nil).Valid).To(BeTrue())
		})
	})
})
