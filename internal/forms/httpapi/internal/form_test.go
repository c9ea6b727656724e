package internal_test

import (
	formsDomain "formbuilder-server/internal/forms/domain"
	forms_httpapi_internal "formbuilder-server/internal/forms/httpapi/internal"
	"formbuilder-server/internal/forms/usecases"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Form DTOs", func() {
	Context("FieldRequest", func() {
		It("should convert a derived field", func() {
			request := forms_httpapi_internal.FieldRequest{
				Type:  "number",
				Label: "Total",
				ValidationRules: []forms_httpapi_internal.ValidationRuleRequest{
					{Type: "minLength", Value: "1", Message: "short"},
				},
				DerivedConfig: &forms_httpapi_internal.DerivedConfig{
					IsDerived:    true,
					ParentFields: []string{"price", "qty"},
					Formula:      "price * qty",
				},
			}

			field := request.ToDomain()

			Expect(field.ID.IsEmpty()).To(BeTrue())
			Expect(field.Type).To(Equal(formsDomain.FieldTypeNumber))
			Expect(field.ValidationRules[0].Value).To(Equal("1"))
			Expect(field.Parents()).To(Equal([]shareddomain.ID{"price", "qty"}))
			Expect(field.Options).To(BeNil())
		})

		It("should give option fields an option list even when none was sent", func() {
			field := forms_httpapi_internal.FieldRequest{Type: "select", Label: "Plan"}.ToDomain()

			Expect(field.Options).NotTo(BeNil())
			Expect(field.Options).To(BeEmpty())
			Expect(field.ValidationRules).NotTo(BeNil())
		})
	})

	Context("ToSessionResponse", func() {
		It("should key values and errors by field id", func() {
			response := forms_httpapi_internal.ToSessionResponse(usecases.SessionView{
				Schema: formsDomain.FormSchema{ID: "s1", Fields: []formsDomain.Field{}},
				Values: formsDomain.Values{"qty": 2.0, "total": ""},
				Errors: map[shareddomain.ID]string{"name": "Name is required"},
				Phase:  usecases.PhaseFilling,
			})

			Expect(response.Values).To(Equal(map[string]any{"qty": 2.0, "total": ""}))
			Expect(response.Errors).To(Equal(map[string]string{"name": "Name is required"}))
			Expect(response.Phase).To(Equal("filling"))
			Expect(response.Schema.Fields).To(BeEmpty())
		})
	})

	Context("ToIntegrityResponse", func() {
		It("should return an empty list for a clean schema", func() {
			Expect(forms_httpapi_internal.ToIntegrityResponse(nil).Data).To(BeEmpty())
			Expect(forms_httpapi_internal.ToIntegrityResponse(nil).Data).NotTo(BeNil())
		})
	})
})
