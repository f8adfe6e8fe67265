package mock

import (
	"context"

	"github.com/fwojciec/hoverdoc"
)

var _ hoverdoc.DocService = (*DocService)(nil)

// DocService is a mock implementation of hoverdoc.DocService.
type DocService struct {
	FetchElementFn          func(ctx context.Context, name string) (*hoverdoc.RichDoc, error)
	FetchGlobalAttributeFn  func(ctx context.Context, name string) (*hoverdoc.RichDoc, error)
	FetchElementAttributeFn func(ctx context.Context, name, owningElement string) (*hoverdoc.RichDoc, error)
}

func (s *DocService) FetchElement(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
	return s.FetchElementFn(ctx, name)
}

func (s *DocService) FetchGlobalAttribute(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
	return s.FetchGlobalAttributeFn(ctx, name)
}

func (s *DocService) FetchElementAttribute(ctx context.Context, name, owningElement string) (*hoverdoc.RichDoc, error) {
	return s.FetchElementAttributeFn(ctx, name, owningElement)
}
