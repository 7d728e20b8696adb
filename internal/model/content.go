package model

import (
	"log/slog"
	"mime"
	"strconv"
	"strings"

	"github.com/goliatone/go-apiref/internal/resolve"
	"github.com/goliatone/go-apiref/pkg/openapi"
)

// StatusCatchAll collects responses whose key is not a plain integer, such
// as "default" or "2XX". Later keys overwrite earlier ones.
const StatusCatchAll = 500

var contentTypes = map[string]ContentType{
	"application/json":                  ContentTypeJSON,
	"application/x-www-form-urlencoded": ContentTypeURLEncoded,
	"multipart/form-data":               ContentTypeMultipart,
}

// MapContentType maps a media type onto the closed ContentType set.
// Parameters such as charset are ignored; unknown types map to JSON.
func MapContentType(mediaType string) ContentType {
	base := strings.ToLower(strings.TrimSpace(mediaType))
	if parsed, _, err := mime.ParseMediaType(base); err == nil {
		base = parsed
	} else if i := strings.IndexByte(base, ';'); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	if ct, ok := contentTypes[base]; ok {
		return ct
	}
	return ContentTypeJSON
}

// StatusCode parses a response key, sending anything that is not an integer
// to StatusCatchAll.
func StatusCode(key string) int {
	code, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return StatusCatchAll
	}
	return code
}

// requestBody picks the first declared media type. Both results are empty
// when there is no body or its schema does not resolve.
func (t *transform) requestBody(raw *openapi.RequestBody) (ContentType, *RouteParameterSchema) {
	if raw == nil {
		return "", nil
	}
	body, ok := t.resolver.RequestBody(raw, nil)
	if !ok {
		return "", nil
	}
	mediaType, media, ok := body.Content.First()
	if !ok || media == nil {
		return "", nil
	}

	chain := resolve.NewChain()
	resolved, ok := t.resolver.Schema(media.Schema, chain)
	if !ok {
		return "", nil
	}
	schema := t.resolved(resolved, chain)
	return MapContentType(mediaType), &schema
}

// responses converts every declared response keyed by numeric status.
func (t *transform) responses(raw *openapi.Responses) map[int]RouteResponse {
	out := make(map[int]RouteResponse)
	if raw == nil {
		return out
	}
	for key, value := range raw.All() {
		code := StatusCode(key)
		if _, exists := out[code]; exists {
			t.logger.Debug("response status collides", slog.String("key", key), slog.Int("status", code))
		}
		out[code] = t.response(value)
	}
	return out
}

func (t *transform) response(raw *openapi.Response) RouteResponse {
	resp, ok := t.resolver.Response(raw, nil)
	if !ok {
		return RouteResponse{}
	}
	out := RouteResponse{
		Description: resp.Description,
		Headers:     t.headers(resp.Headers),
	}

	mediaType, media, ok := resp.Content.First()
	if !ok {
		return out
	}
	out.ContentType = MapContentType(mediaType)
	if media == nil {
		return out
	}

	chain := resolve.NewChain()
	if resolved, ok := t.resolver.Schema(media.Schema, chain); ok {
		schema := t.resolved(resolved, chain)
		out.Body = &schema
	}
	return out
}
