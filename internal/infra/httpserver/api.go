package httpserver

import "net/http"

// Controller registers its method-qualified patterns on the shared mux.
type Controller interface {
	AddRoutes(router *http.ServeMux)
}
