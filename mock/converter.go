package mock

import "github.com/fwojciec/hoverdoc"

var _ hoverdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of hoverdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
