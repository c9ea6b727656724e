package httpapi

import (
	"errors"
	"formbuilder-server/internal/forms/httpapi/internal"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/infra/httpserver"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"net/http"
)

const (
	openPreviewErrMessage      = "failed to open preview"
	setValueErrMessage         = "failed to set value"
	submitErrMessage           = "failed to submit form"
	noActiveSessionErrMessage  = "no active preview session"
	fieldNotFoundErrMessage    = "field not found in previewed schema"
	alreadySubmittedErrMessage = "form already submitted"
	schemaCycleErrMessage      = "schema has a derivation cycle"
)

func NewPreviewController(service usecases.PreviewService) *PreviewController {
	return &PreviewController{
		service: service,
	}
}

var _ httpserver.Controller = &PreviewController{}

type PreviewController struct {
	service usecases.PreviewService
}

func (c *PreviewController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/schemas/{id}/preview", c.openSchemaPreview())
	router.Handle("POST /v1/draft/preview", c.openDraftPreview())
	router.Handle("GET /v1/preview", c.getPreview())
	router.Handle("DELETE /v1/preview", c.closePreview())
	router.Handle("PUT /v1/preview/values/{fieldId}", c.setValue())
	router.Handle("POST /v1/preview/submit", c.submit())
}

func (c *PreviewController) openSchemaPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		view, err := c.service.OpenSession(r.Context(), shareddomain.ID(id))
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrSchemaNotFound):
				http.Error(w, schemaNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrSchemaIntegrity):
				http.Error(w, schemaCycleErrMessage, http.StatusConflict)
			default:
				slog.Error("opening preview", slog.String("schema_id", id), slog.String("error", err.Error()))
				http.Error(w, openPreviewErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSessionResponse(view))
	}
}

func (c *PreviewController) openDraftPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.OpenDraftSession(r.Context())
		if err != nil {
			if errors.Is(err, usecases.ErrSchemaIntegrity) {
				http.Error(w, schemaCycleErrMessage, http.StatusConflict)
				return
			}
			slog.Error("opening draft preview", slog.String("error", err.Error()))
			http.Error(w, openPreviewErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSessionResponse(view))
	}
}

func (c *PreviewController) getPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.ActiveSession(r.Context())
		if err != nil {
			http.Error(w, noActiveSessionErrMessage, http.StatusNotFound)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(view))
	}
}

func (c *PreviewController) closePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.service.CloseSession(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *PreviewController) setValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := r.PathValue("fieldId")

		var body internal.ValueRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, setValueErrMessage, http.StatusBadRequest)
			return
		}

		view, err := c.service.SetValue(r.Context(), shareddomain.ID(fieldID), body.Value)
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrNoActiveSession):
				http.Error(w, noActiveSessionErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrFieldNotFound):
				http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrSessionSubmitted):
				http.Error(w, alreadySubmittedErrMessage, http.StatusConflict)
			default:
				slog.Error("setting preview value", slog.String("field_id", fieldID), slog.String("error", err.Error()))
				http.Error(w, setValueErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(view))
	}
}

func (c *PreviewController) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := c.service.Submit(r.Context())
		if err != nil {
			if errors.Is(err, usecases.ErrNoActiveSession) {
				http.Error(w, noActiveSessionErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("submitting preview", slog.String("error", err.Error()))
			http.Error(w, submitErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSubmitResponse(result))
	}
}
