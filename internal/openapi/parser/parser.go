package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-apiref/internal/logging"
	"github.com/goliatone/go-apiref/internal/openapi/validator"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
)

// SupportedVersion is the OpenAPI minor version the normalizer targets.
const SupportedVersion = "3.1"

// Parser implements pkgopenapi.Parser on the ordered yaml.v3 decoder, with an
// optional kin-openapi validation pass.
type Parser struct {
	options pkgopenapi.ParserOptions
	logger  *slog.Logger
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options, logger: logging.OrDiscard(options.Logger)}
}

// Parse decodes doc into a Spec.
func (p *Parser) Parse(ctx context.Context, doc pkgopenapi.Document) (*pkgopenapi.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, fmt.Errorf("openapi parser: %w", pkgopenapi.ErrEmptyDocument)
	}

	if p.options.Validate {
		if err := validator.Validate(ctx, raw); err != nil {
			return nil, fmt.Errorf("openapi parser: %s: %w", doc.Location(), err)
		}
	}

	spec, err := pkgopenapi.ParseSpec(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: %s: %w", doc.Location(), err)
	}

	if version := spec.Version(); !isSupported(version) {
		p.logger.Warn("unsupported openapi version, continuing",
			slog.String("source", doc.Location()),
			slog.String("version", version),
			slog.String("supported", SupportedVersion+".x"))
	}

	if (spec.Paths == nil || spec.Paths.Len() == 0) && !p.options.AllowEmptyPaths {
		return nil, fmt.Errorf("openapi parser: %s: %w", doc.Location(), pkgopenapi.ErrNoPaths)
	}
	return spec, nil
}

func isSupported(version string) bool {
	return version == SupportedVersion || strings.HasPrefix(version, SupportedVersion+".")
}
