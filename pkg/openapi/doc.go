// Package openapi holds the in-memory OpenAPI 3.1 model (Spec) together with
// the public loader and parser contracts. Decoding keeps declaration order for
// every map the builder walks, so the same document always produces the same
// route list. Loader and parser implementations live under internal/openapi.
package openapi
