package mock

import "github.com/fwojciec/hoverdoc"

var _ hoverdoc.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of hoverdoc.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(rawHTML string) (string, error)
}

func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	return s.SanitizeFn(rawHTML)
}
