package tui

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-apiref/pkg/view"
)

// FormatRoute renders one route as plain text. labels are the localized
// section headings returned by render.Labels.
func FormatRoute(route view.Route, labels map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", strings.ToUpper(string(route.Method())), route.Path())
	if route.Title() != route.Path() {
		fmt.Fprintf(&b, "%s\n", route.Title())
	}
	if route.Deprecated() {
		fmt.Fprintf(&b, "[%s]\n", labels["deprecated"])
	}
	if desc := strings.TrimSpace(route.Description()); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}

	if urls := route.DomainURLs(); len(urls) > 0 {
		fmt.Fprintf(&b, "\n%s: %s\n", labels["servers"], strings.Join(urls, ", "))
	}
	if auth := route.Authorization(); auth != nil {
		fmt.Fprintf(&b, "%s: %s", labels["authorization"], strings.Join(view.AuthLines(auth), " | "))
		if auth.Optional {
			fmt.Fprintf(&b, " (%s)", labels["optional_auth"])
		}
		b.WriteString("\n")
	}

	raw := route.Model()
	writeFields(&b, labels["path_params"], view.Fields(raw.PathParams))
	writeFields(&b, labels["query_params"], view.Fields(raw.QueryParams))
	if raw.Body != nil {
		fmt.Fprintf(&b, "\n%s (%s): %s\n", labels["request_body"], raw.ContentType, view.TypeLabel(*raw.Body))
		writeFieldLines(&b, view.SchemaFields(raw.Body))
	}

	if responses := route.Responses(); len(responses) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", labels["responses"])
		for _, resp := range responses {
			writeResponse(&b, resp)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeResponse(b *strings.Builder, resp view.Response) {
	fmt.Fprintf(b, "  %d", resp.Status)
	if resp.ContentType != "" {
		fmt.Fprintf(b, " %s", resp.ContentType)
	}
	if resp.Body != nil {
		fmt.Fprintf(b, " %s", view.TypeLabel(*resp.Body))
	}
	if resp.Description != "" {
		fmt.Fprintf(b, "  %s", oneLine(resp.Description))
	}
	b.WriteString("\n")
	for _, field := range view.Fields(resp.Headers) {
		fmt.Fprintf(b, "    %s: %s\n", field.Name, view.TypeLabel(field.Schema))
	}
}

func writeFields(b *strings.Builder, heading string, fields []view.Field) {
	if len(fields) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	writeFieldLines(b, fields)
}

func writeFieldLines(b *strings.Builder, fields []view.Field) {
	for _, field := range fields {
		b.WriteString(strings.Repeat("  ", field.Depth+1))
		b.WriteString(field.Name)
		if field.Required {
			b.WriteString("*")
		}
		b.WriteString(" ")
		b.WriteString(view.TypeLabel(field.Schema))
		if desc := fieldDescription(field); desc != "" {
			b.WriteString("  ")
			b.WriteString(desc)
		}
		if constraints := view.Constraints(field.Schema); len(constraints) > 0 {
			fmt.Fprintf(b, " (%s)", strings.Join(constraints, "; "))
		}
		b.WriteString("\n")
	}
}

func fieldDescription(field view.Field) string {
	if field.Description != "" {
		return oneLine(field.Description)
	}
	return field.Title
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// routeLabel is the menu entry for a route.
func routeLabel(route view.Route) string {
	label := fmt.Sprintf("%-7s %s", strings.ToUpper(string(route.Method())), route.Path())
	if route.Title() != route.Path() {
		label += "  " + route.Title()
	}
	if route.Deprecated() {
		label += " (deprecated)"
	}
	return label
}
