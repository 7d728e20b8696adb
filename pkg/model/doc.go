// Package model defines the normalized API reference consumed by renderers.
// Builders reside in internal/model but return the types re-exported here.
//
// RouteParameterSchema is a closed variant keyed by Type: array, object,
// file, string, number, integer, boolean, null and never. Never stands for
// input the variant set cannot express (unions, schemas without a single
// type, unresolved or cyclic references) and consumers are expected to
// handle it like any other case. Use the constructors to build values and
// Validate to check hand-built ones.
//
// Encoding with encoding/json yields the compact document shape: optional
// fields are omitted, RouteParameter flattens its schema, and responses are
// keyed by numeric status.
package model
