package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResult is matched by *EmptyResultError through errors.Is.
	ErrEmptyResult = errors.New("model builder: no routes found in document")

	// ErrNilSpec reports a Build call without a document.
	ErrNilSpec = errors.New("model builder: spec is nil")
)

// EmptyResultError reports a document that produced no routes. DeclaredPaths
// separates "the document had nothing" (zero) from "no path declared a
// supported method".
type EmptyResultError struct {
	DeclaredPaths int
	Methods       []RouteMethod
}

func (e *EmptyResultError) Error() string {
	if e.DeclaredPaths == 0 {
		return "model builder: document declares no paths"
	}
	methods := make([]string, 0, len(e.Methods))
	for _, method := range e.Methods {
		methods = append(methods, string(method))
	}
	return fmt.Sprintf("model builder: %d paths declared but none has an operation for %s",
		e.DeclaredPaths, strings.Join(methods, ", "))
}

// Is matches ErrEmptyResult.
func (e *EmptyResultError) Is(target error) bool {
	return target == ErrEmptyResult
}
