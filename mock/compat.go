package mock

import "github.com/fwojciec/hoverdoc"

var _ hoverdoc.CompatService = (*CompatService)(nil)

// CompatService is a mock implementation of hoverdoc.CompatService.
type CompatService struct {
	SummarizeElementFn          func(name string) ([]hoverdoc.BrowserSupport, error)
	SummarizeElementAttributeFn func(element, name string) ([]hoverdoc.BrowserSupport, error)
	SummarizeGlobalAttributeFn  func(name string) ([]hoverdoc.BrowserSupport, error)
}

func (s *CompatService) SummarizeElement(name string) ([]hoverdoc.BrowserSupport, error) {
	return s.SummarizeElementFn(name)
}

func (s *CompatService) SummarizeElementAttribute(element, name string) ([]hoverdoc.BrowserSupport, error) {
	return s.SummarizeElementAttributeFn(element, name)
}

func (s *CompatService) SummarizeGlobalAttribute(name string) ([]hoverdoc.BrowserSupport, error) {
	return s.SummarizeGlobalAttributeFn(name)
}
