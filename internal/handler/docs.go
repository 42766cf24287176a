package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rideshare/rides-api/openapi"
)

// docsPage renders the Scalar API reference for /openapi.yaml.
const docsPage = `<!doctype html>
<html>
  <head>
    <title>Rides API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`

// MountDocs registers GET /openapi.yaml (the embedded document) and
// GET /docs (an HTML reference page that loads it).
func MountDocs(r chi.Router) {
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openapi.Document)
	})
	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(docsPage))
	})
}
