package llm

import (
	"context"
	"encoding/json"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/extract"
)

// StructureRequest carries the extracted content the model should turn
// into schema-shaped fields.
type StructureRequest struct {
	Kind     constants.DocumentKind
	Text     string
	Tables   []extract.Table
	FileName string
	Pages    int
	Method   string
}

// Structurer is the interface the pipeline depends on. The raw JSON a
// Structurer returns has already passed schema validation.
type Structurer interface {
	Structure(ctx context.Context, req StructureRequest) (json.RawMessage, error)
}
