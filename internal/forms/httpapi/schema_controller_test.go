package httpapi_test

import (
	"encoding/json"
	"errors"
	formsDomain "formbuilder-server/internal/forms/domain"
	forms_httpapi "formbuilder-server/internal/forms/httpapi"
	forms_httpapi_internal "formbuilder-server/internal/forms/httpapi/internal"
	"formbuilder-server/internal/forms/usecases"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	mockusecases "formbuilder-server/test/unit/doubles/forms/usecases"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SchemaController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockSchemaService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		schema      formsDomain.FormSchema
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSchemaService(ctrl)
		router = http.NewServeMux()
		forms_httpapi.NewSchemaController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		schema = formsDomain.FormSchema{
			ID:        "s1",
			Name:      "Contact",
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Fields: []formsDomain.Field{
				{ID: "email", Type: formsDomain.FieldTypeText, Label: "Email", ValidationRules: []formsDomain.ValidationRule{}},
			},
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listSchemas", func() {
		It("should return every saved schema", func() {
			mockService.EXPECT().ListSchemas(gomock.Any()).Return([]formsDomain.FormSchema{schema}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response forms_httpapi_internal.SchemaListResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].ID).To(Equal("s1"))
			Expect(response.Data[0].Fields[0].Label).To(Equal("Email"))
		})

		It("should return an empty list rather than null", func() {
			mockService.EXPECT().ListSchemas(gomock.Any()).Return([]formsDomain.FormSchema{}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"data":[]`))
		})

		It("should report a malformed collection as a server error", func() {
			mockService.EXPECT().ListSchemas(gomock.Any()).Return(nil, usecases.ErrMalformedCollection)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).To(ContainSubstring("failed to list schemas"))
		})
	})

	Context("getSchema", func() {
		It("should return the schema", func() {
			mockService.EXPECT().GetSchema(gomock.Any(), shareddomain.ID("s1")).Return(schema, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas/s1", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response forms_httpapi_internal.SchemaResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Name).To(Equal("Contact"))
			Expect(response.CreatedAt.Equal(schema.CreatedAt)).To(BeTrue())
		})

		It("should return not found for an unknown id", func() {
			mockService.EXPECT().GetSchema(gomock.Any(), shareddomain.ID("nope")).Return(formsDomain.FormSchema{}, usecases.ErrSchemaNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas/nope", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(ContainSubstring("schema not found"))
		})
	})

	Context("deleteSchema", func() {
		It("should delete and reply with no content", func() {
			mockService.EXPECT().DeleteSchema(gomock.Any(), shareddomain.ID("s1")).Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/schemas/s1", nil))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("should return not found when the schema is missing", func() {
			mockService.EXPECT().DeleteSchema(gomock.Any(), shareddomain.ID("s9")).Return(usecases.ErrSchemaNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/schemas/s9", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should return a server error when the store fails", func() {
			mockService.EXPECT().DeleteSchema(gomock.Any(), shareddomain.ID("s1")).Return(errors.New("disk full"))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/schemas/s1", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("disk full"))
		})
	})

	Context("checkIntegrity", func() {
		It("should list the findings", func() {
			mockService.EXPECT().CheckIntegrity(gomock.Any(), shareddomain.ID("s1")).Return([]formsDomain.IntegrityError{
				{FieldID: "total", Kind: formsDomain.IntegrityUnresolvedParent, Detail: "price"},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/schemas/s1/integrity", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response forms_httpapi_internal.IntegrityResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(ConsistOf(forms_httpapi_internal.IntegrityErrorResponse{
				FieldID: "total",
				Kind:    "unresolved_parent",
				Detail:  "price",
			}))
		})
	})
})
