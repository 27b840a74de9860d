package mock

import "github.com/awalczak/mailpost"

var _ mailpost.Converter = (*Converter)(nil)

// Converter is a mock implementation of mailpost.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
