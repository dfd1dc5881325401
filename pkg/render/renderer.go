package render

import "context"

// Renderer converts a composed Document into a byte representation (HTML,
// terminal text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc *Document, options RenderOptions) ([]byte, error)
}
