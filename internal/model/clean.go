package model

// compact drops empty containers so absent and empty read the same way in Go
// and in the encoded output. Routes keep a non-nil tag list and response map.
func compact(core *APIReferenceCore) {
	if len(core.DomainURLs) == 0 {
		core.DomainURLs = nil
	}
	for i := range core.Routes {
		route := &core.Routes[i]
		if len(route.DomainURLs) == 0 {
			route.DomainURLs = nil
		}
		if route.Tags == nil {
			route.Tags = [][]string{}
		}
		route.PathParams = compactParameters(route.PathParams)
		route.QueryParams = compactParameters(route.QueryParams)
		if route.Body != nil {
			compactSchema(route.Body)
		}
		if route.Responses == nil {
			route.Responses = map[int]RouteResponse{}
		}
		for code, resp := range route.Responses {
			resp.Headers = compactParameters(resp.Headers)
			if resp.Body != nil {
				compactSchema(resp.Body)
			}
			route.Responses[code] = resp
		}
	}
}

func compactParameters(params RouteParameters) RouteParameters {
	if len(params) == 0 {
		return nil
	}
	for name, param := range params {
		compactSchema(&param.RouteParameterSchema)
		params[name] = param
	}
	return params
}

func compactSchema(s *RouteParameterSchema) {
	if len(s.Enum) == 0 {
		s.Enum = nil
	}
	s.Properties = compactParameters(s.Properties)
	if s.Items != nil {
		compactSchema(s.Items)
	}
}

func cloneValues(in []any) []any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = cloneValue(v)
	}
	return out
}

// cloneValue copies decoded YAML values so output never aliases the input.
func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = cloneValue(value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = cloneValue(value)
		}
		return out
	default:
		return v
	}
}

func cloneInt(in *int) *int {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	value := *in
	return &value
}
