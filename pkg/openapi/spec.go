package openapi

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec is the read-only in-memory model of an OpenAPI 3.1 document. Only the
// parts consumed by the reference builder are modelled; unknown keys are
// ignored during decoding.
type Spec struct {
	OpenAPI    string                `yaml:"openapi"`
	Info       Info                  `yaml:"info"`
	Servers    []Server              `yaml:"servers"`
	Paths      *Paths                `yaml:"paths"`
	Components *Components           `yaml:"components"`
	Security   []SecurityRequirement `yaml:"security"`
	Tags       []Tag                 `yaml:"tags"`
}

// Info carries document metadata.
type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Server describes a base URL.
type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Tag describes an operation tag.
type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Paths holds path items in declaration order. Specification extensions
// ("x-" keys) are skipped.
type Paths struct {
	Map[*PathItem]
}

// UnmarshalYAML decodes the paths object.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	return p.decode(node, true)
}

// PathItem groups the operations available on one path.
type PathItem struct {
	Ref         string       `yaml:"$ref"`
	Summary     string       `yaml:"summary"`
	Description string       `yaml:"description"`
	Servers     []Server     `yaml:"servers"`
	Parameters  []*Parameter `yaml:"parameters"`
	Get         *Operation   `yaml:"get"`
	Put         *Operation   `yaml:"put"`
	Post        *Operation   `yaml:"post"`
	Delete      *Operation   `yaml:"delete"`
	Options     *Operation   `yaml:"options"`
	Head        *Operation   `yaml:"head"`
	Patch       *Operation   `yaml:"patch"`
	Trace       *Operation   `yaml:"trace"`
}

// Operation returns the operation declared for method, matched case
// insensitively. Unknown methods return nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch strings.ToLower(method) {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	default:
		return nil
	}
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string        `yaml:"operationId"`
	Summary     string        `yaml:"summary"`
	Description string        `yaml:"description"`
	Tags        []string      `yaml:"tags"`
	Deprecated  bool          `yaml:"deprecated"`
	Servers     []Server      `yaml:"servers"`
	Parameters  []*Parameter  `yaml:"parameters"`
	RequestBody *RequestBody  `yaml:"requestBody"`
	Responses   *Responses    `yaml:"responses"`
	Security    *SecurityList `yaml:"security"`
}

// Parameter describes a single operation parameter. Ref is set when the
// parameter is a reference object.
type Parameter struct {
	Ref         string           `yaml:"$ref"`
	Name        string           `yaml:"name"`
	In          string           `yaml:"in"`
	Description string           `yaml:"description"`
	Required    bool             `yaml:"required"`
	Deprecated  bool             `yaml:"deprecated"`
	Schema      *Schema          `yaml:"schema"`
	Content     *Map[*MediaType] `yaml:"content"`
}

// RequestBody describes a request payload.
type RequestBody struct {
	Ref         string           `yaml:"$ref"`
	Description string           `yaml:"description"`
	Required    bool             `yaml:"required"`
	Content     *Map[*MediaType] `yaml:"content"`
}

// MediaType pairs a media type with its schema.
type MediaType struct {
	Schema *Schema `yaml:"schema"`
}

// Responses holds responses keyed by status code in declaration order.
// Specification extensions are skipped.
type Responses struct {
	Map[*Response]
}

// UnmarshalYAML decodes the responses object.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	return r.decode(node, true)
}

// Response describes a single response.
type Response struct {
	Ref         string           `yaml:"$ref"`
	Description string           `yaml:"description"`
	Headers     *Map[*Header]    `yaml:"headers"`
	Content     *Map[*MediaType] `yaml:"content"`
}

// Header describes a response header.
type Header struct {
	Ref         string  `yaml:"$ref"`
	Description string  `yaml:"description"`
	Required    bool    `yaml:"required"`
	Deprecated  bool    `yaml:"deprecated"`
	Schema      *Schema `yaml:"schema"`
}

// Components holds reusable objects addressed by "#/components/<kind>/<name>".
type Components struct {
	Schemas         *Map[*Schema]         `yaml:"schemas"`
	Responses       *Map[*Response]       `yaml:"responses"`
	Parameters      *Map[*Parameter]      `yaml:"parameters"`
	RequestBodies   *Map[*RequestBody]    `yaml:"requestBodies"`
	Headers         *Map[*Header]         `yaml:"headers"`
	SecuritySchemes *Map[*SecurityScheme] `yaml:"securitySchemes"`
	PathItems       *Map[*PathItem]       `yaml:"pathItems"`
}

// SecurityScheme describes an authentication mechanism.
type SecurityScheme struct {
	Ref              string      `yaml:"$ref"`
	Type             string      `yaml:"type"`
	Description      string      `yaml:"description"`
	Name             string      `yaml:"name"`
	In               string      `yaml:"in"`
	Scheme           string      `yaml:"scheme"`
	BearerFormat     string      `yaml:"bearerFormat"`
	OpenIDConnectURL string      `yaml:"openIdConnectUrl"`
	Flows            *OAuthFlows `yaml:"flows"`
}

// OAuthFlows lists the configured OAuth2 flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit"`
	Password          *OAuthFlow `yaml:"password"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode"`
}

// OAuthFlow configures one OAuth2 flow.
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl"`
	TokenURL         string            `yaml:"tokenUrl"`
	RefreshURL       string            `yaml:"refreshUrl"`
	Scopes           map[string]string `yaml:"scopes"`
}

// SecurityRequirement maps scheme names to required scopes. Every scheme in
// one requirement must be satisfied together.
type SecurityRequirement struct {
	Map[[]string]
}

// SecurityList is an operation level security override. A nil *SecurityList
// inherits the document requirements; a non-nil empty list disables security
// for the operation.
type SecurityList struct {
	Requirements []SecurityRequirement
}

// UnmarshalYAML decodes a security requirement sequence.
func (s *SecurityList) UnmarshalYAML(node *yaml.Node) error {
	var reqs []SecurityRequirement
	if err := node.Decode(&reqs); err != nil {
		return err
	}
	s.Requirements = reqs
	return nil
}
