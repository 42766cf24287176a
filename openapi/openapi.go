// Package openapi embeds the OpenAPI document for the Rides API.
// It is imported by the HTTP server to serve the document at /openapi.yaml
// and by the API reference page at /docs.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
