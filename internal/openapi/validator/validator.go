// Package validator runs kin-openapi's structural checks over a raw document
// before it is normalized.
package validator

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
)

// Validate loads raw with kin-openapi and validates it. External references
// are never fetched. Failures wrap pkgopenapi.ErrInvalidDocument.
func Validate(ctx context.Context, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return fmt.Errorf("%w: load: %v", pkgopenapi.ErrInvalidDocument, err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("%w: %v", pkgopenapi.ErrInvalidDocument, err)
	}
	return nil
}
