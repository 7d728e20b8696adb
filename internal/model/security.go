package model

import (
	"log/slog"

	"github.com/goliatone/go-apiref/pkg/openapi"
)

// authorization converts security requirements. An empty requirement object
// marks anonymous access as acceptable. A non-nil result with no
// requirements means the route needs no authorization.
func (t *transform) authorization(reqs []openapi.SecurityRequirement) *Authorization {
	auth := &Authorization{Requirements: []AuthRequirement{}}
	for _, req := range reqs {
		if req.Len() == 0 {
			auth.Optional = true
			continue
		}
		schemes := make([]AuthScheme, 0, req.Len())
		for name, scopes := range req.All() {
			schemes = append(schemes, t.authScheme(name, scopes))
		}
		auth.Requirements = append(auth.Requirements, AuthRequirement{Schemes: schemes})
	}
	if len(auth.Requirements) == 0 {
		auth.Optional = false
	}
	return auth
}

func (t *transform) authScheme(name string, scopes []string) AuthScheme {
	out := AuthScheme{Name: name}
	if len(scopes) > 0 {
		out.Scopes = append([]string(nil), scopes...)
	}
	scheme, ok := t.resolver.SecuritySchemeByName(name)
	if !ok {
		t.logger.Debug("unknown security scheme", slog.String("name", name))
		return out
	}
	out.Type = scheme.Type
	out.Scheme = scheme.Scheme
	out.BearerFormat = scheme.BearerFormat
	out.In = scheme.In
	out.Parameter = scheme.Name
	out.Description = scheme.Description
	return out
}
