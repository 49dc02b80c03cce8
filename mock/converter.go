package mock

import (
	"fastfact"
)

var _ fastfact.Converter = (*Converter)(nil)

// Converter is a mock implementation of fastfact.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
