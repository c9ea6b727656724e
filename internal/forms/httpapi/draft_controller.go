package httpapi

import (
	"errors"
	formsDomain "formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/httpapi/internal"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/infra/httpserver"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	setDraftNameErrMessage    = "failed to rename draft"
	addFieldErrMessage        = "failed to add field"
	updateFieldErrMessage     = "failed to update field"
	deleteFieldErrMessage     = "failed to delete field"
	reorderFieldsErrMessage   = "failed to reorder fields"
	saveDraftErrMessage       = "failed to save draft"
	invalidIndexErrMessage    = "field index must be an integer"
	fieldIndexErrMessage      = "field index out of range"
	duplicateFieldErrMessage  = "field id already present in draft"
	draftNotSavableErrMessage = "draft needs a name and at least one field"
	reorderBodyErrMessage     = "from and to are required"
)

func NewDraftController(service usecases.BuilderService) *DraftController {
	return &DraftController{
		service: service,
	}
}

var _ httpserver.Controller = &DraftController{}

type DraftController struct {
	service usecases.BuilderService
}

func (c *DraftController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/draft", c.getDraft())
	router.Handle("PUT /v1/draft/name", c.setName())
	router.Handle("DELETE /v1/draft", c.clearDraft())
	router.Handle("POST /v1/draft/fields", c.addField())
	router.Handle("PUT /v1/draft/fields/{index}", c.updateField())
	router.Handle("DELETE /v1/draft/fields/{index}", c.deleteField())
	router.Handle("POST /v1/draft/fields/reorder", c.reorderFields())
	router.Handle("GET /v1/draft/fields/{fieldId}/parents", c.availableParents())
	router.Handle("POST /v1/draft/save", c.saveDraft())
}

func (c *DraftController) getDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := c.service.Draft(r.Context())
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDraftResponse(view))
	}
}

func (c *DraftController) setName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.DraftNameRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, setDraftNameErrMessage, http.StatusBadRequest)
			return
		}

		view := c.service.SetName(r.Context(), body.Name)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDraftResponse(view))
	}
}

func (c *DraftController) clearDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.service.ClearDraft(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DraftController) addField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, addFieldErrMessage, http.StatusBadRequest)
			return
		}

		field, err := c.service.AddField(r.Context(), body.ToDomain())
		if err != nil {
			replyFieldError(w, err, addFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldResponse(field))
	}
}

func (c *DraftController) updateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			http.Error(w, invalidIndexErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.FieldRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, updateFieldErrMessage, http.StatusBadRequest)
			return
		}

		if err := c.service.UpdateField(r.Context(), index, body.ToDomain()); err != nil {
			replyFieldError(w, err, updateFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDraftResponse(c.service.Draft(r.Context())))
	}
}

func (c *DraftController) deleteField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			http.Error(w, invalidIndexErrMessage, http.StatusBadRequest)
			return
		}

		if err := c.service.DeleteField(r.Context(), index); err != nil {
			replyFieldError(w, err, deleteFieldErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DraftController) reorderFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReorderRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, reorderFieldsErrMessage, http.StatusBadRequest)
			return
		}
		if body.From == nil || body.To == nil {
			http.Error(w, reorderBodyErrMessage, http.StatusBadRequest)
			return
		}

		if err := c.service.ReorderFields(r.Context(), *body.From, *body.To); err != nil {
			replyFieldError(w, err, reorderFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDraftResponse(c.service.Draft(r.Context())))
	}
}

func (c *DraftController) availableParents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := shareddomain.ID(r.PathValue("fieldId"))

		parents := c.service.AvailableParents(r.Context(), fieldID)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FieldListResponse{
			Data: internal.ToFieldResponses(parents),
		})
	}
}

func (c *DraftController) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schema, saved, err := c.service.Save(r.Context())
		if err != nil {
			slog.Error("saving draft", slog.String("error", err.Error()))
			http.Error(w, saveDraftErrMessage, http.StatusInternalServerError)
			return
		}
		if !saved {
			http.Error(w, draftNotSavableErrMessage, http.StatusBadRequest)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSchemaResponse(schema))
	}
}

func replyFieldError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, formsDomain.ErrIndexOutOfRange):
		http.Error(w, fieldIndexErrMessage, http.StatusNotFound)
	case errors.Is(err, formsDomain.ErrDuplicateFieldID):
		http.Error(w, duplicateFieldErrMessage, http.StatusConflict)
	case errors.Is(err, formsDomain.ErrUnknownFieldType),
		errors.Is(err, formsDomain.ErrEmptyLabel),
		errors.Is(err, formsDomain.ErrUnknownRuleType),
		errors.Is(err, formsDomain.ErrMissingRuleValue),
		errors.Is(err, formsDomain.ErrDerivedSelfParent):
		http.Error(w, message+": "+unwrapMessage(err), http.StatusBadRequest)
	default:
		slog.Error(message, slog.String("error", err.Error()))
		http.Error(w, message, http.StatusInternalServerError)
	}
}

// unwrapMessage drops the operation prefix the services add so clients see
// the domain reason only.
func unwrapMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
