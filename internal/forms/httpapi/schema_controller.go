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
	listSchemasErrMessage    = "failed to list schemas"
	getSchemaErrMessage      = "failed to get schema"
	deleteSchemaErrMessage   = "failed to delete schema"
	checkIntegrityErrMessage = "failed to check schema integrity"
	schemaNotFoundErrMessage = "schema not found"
)

func NewSchemaController(service usecases.SchemaService) *SchemaController {
	return &SchemaController{
		service: service,
	}
}

var _ httpserver.Controller = &SchemaController{}

type SchemaController struct {
	service usecases.SchemaService
}

func (c *SchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/schemas", c.listSchemas())
	router.Handle("GET /v1/schemas/{id}", c.getSchema())
	router.Handle("DELETE /v1/schemas/{id}", c.deleteSchema())
	router.Handle("GET /v1/schemas/{id}/integrity", c.checkIntegrity())
}

func (c *SchemaController) listSchemas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemas, err := c.service.ListSchemas(r.Context())
		if err != nil {
			slog.Error("listing schemas", slog.String("error", err.Error()))
			http.Error(w, listSchemasErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.SchemaListResponse{Data: make([]internal.SchemaResponse, len(schemas))}
		for i, schema := range schemas {
			response.Data[i] = internal.ToSchemaResponse(schema)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SchemaController) getSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		schema, err := c.service.GetSchema(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSchemaNotFound) {
				http.Error(w, schemaNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting schema", slog.String("schema_id", id), slog.String("error", err.Error()))
			http.Error(w, getSchemaErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSchemaResponse(schema))
	}
}

func (c *SchemaController) deleteSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteSchema(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSchemaNotFound) {
				http.Error(w, schemaNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting schema", slog.String("schema_id", id), slog.String("error", err.Error()))
			http.Error(w, deleteSchemaErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *SchemaController) checkIntegrity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		findings, err := c.service.CheckIntegrity(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrSchemaNotFound) {
				http.Error(w, schemaNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("checking schema integrity", slog.String("schema_id", id), slog.String("error", err.Error()))
			http.Error(w, checkIntegrityErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToIntegrityResponse(findings))
	}
}
