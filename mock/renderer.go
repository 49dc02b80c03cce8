package mock

import (
	"fastfact"
)

var _ fastfact.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of fastfact.Renderer.
type Renderer struct {
	RenderFn func(html string) (*fastfact.RenderedText, error)
}

func (r *Renderer) Render(html string) (*fastfact.RenderedText, error) {
	return r.RenderFn(html)
}
