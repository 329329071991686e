// Package api embeds the OpenAPI document of the HTTP interface. Importing it
// registers the document with swag so echo-swagger can serve it.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

// document serves the embedded JSON through swag's registry.
type document struct{}

// ReadDoc implements swag.Swagger.
func (document) ReadDoc() string {
	return string(openAPIDocument)
}

func init() {
	swag.Register(swag.Name, document{})
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}
