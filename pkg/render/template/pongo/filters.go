package pongo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	defaults := map[string]pongo2.FilterFunction{
		"trim":         filterTrim,
		"status_class": filterStatusClass,
		"tojson":       filterJSON,
		"tagpath":      filterTagPath,
	}
	for name, fn := range defaults {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterStatusClass maps a status code to its class ("2xx", "4xx", ...).
func filterStatusClass(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsInteger() {
		return pongo2.AsValue("other"), nil
	}
	code := in.Integer()
	if code < 100 || code > 599 {
		return pongo2.AsValue("other"), nil
	}
	return pongo2.AsValue(fmt.Sprintf("%dxx", code/100)), nil
}

// filterJSON encodes a value as indented JSON, for defaults and enums.
func filterJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	payload, err := json.MarshalIndent(in.Interface(), "", "  ")
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:tojson", OrigError: err}
	}
	return pongo2.AsValue(string(payload)), nil
}

// filterTagPath joins a tag path with the hierarchy separator.
func filterTagPath(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	segments, ok := in.Interface().([]string)
	if !ok {
		return pongo2.AsValue(in.String()), nil
	}
	return pongo2.AsValue(strings.Join(segments, " > ")), nil
}
