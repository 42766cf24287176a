// Package gen holds the server interfaces and models generated from
// openapi/openapi.yaml. Regenerate with `go generate ./...` after editing the
// document; never edit api.gen.go by hand.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=cfg.yaml ../../../openapi/openapi.yaml
