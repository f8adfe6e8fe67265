package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hoverdoc"
	"github.com/google/uuid"
)

// Ensure LoggingDocService implements hoverdoc.DocService.
var _ hoverdoc.DocService = (*LoggingDocService)(nil)

// LoggingDocService wraps a DocService with per-lookup logging. Every
// lookup gets a generated id so its log lines can be correlated.
type LoggingDocService struct {
	next   hoverdoc.DocService
	logger *slog.Logger
}

// NewLoggingDocService creates a new LoggingDocService.
func NewLoggingDocService(next hoverdoc.DocService, logger *slog.Logger) *LoggingDocService {
	return &LoggingDocService{next: next, logger: logger}
}

// FetchElement delegates to the wrapped service and logs the lookup.
func (s *LoggingDocService) FetchElement(ctx context.Context, name string) (doc *hoverdoc.RichDoc, err error) {
	defer s.log(time.Now(), "element", name, "", &doc, &err)
	return s.next.FetchElement(ctx, name)
}

// FetchGlobalAttribute delegates to the wrapped service and logs the lookup.
func (s *LoggingDocService) FetchGlobalAttribute(ctx context.Context, name string) (doc *hoverdoc.RichDoc, err error) {
	defer s.log(time.Now(), "global-attribute", name, "", &doc, &err)
	return s.next.FetchGlobalAttribute(ctx, name)
}

// FetchElementAttribute delegates to the wrapped service and logs the lookup.
func (s *LoggingDocService) FetchElementAttribute(ctx context.Context, name, owningElement string) (doc *hoverdoc.RichDoc, err error) {
	defer s.log(time.Now(), "element-attribute", name, owningElement, &doc, &err)
	return s.next.FetchElementAttribute(ctx, name, owningElement)
}

func (s *LoggingDocService) log(begin time.Time, kind, name, owningElement string, doc **hoverdoc.RichDoc, err *error) {
	attrs := []any{
		"lookup", uuid.NewString(),
		"kind", kind,
		"name", name,
	}
	if owningElement != "" {
		attrs = append(attrs, "element", owningElement)
	}
	if *doc != nil {
		attrs = append(attrs, "bytes", len((*doc).HTML))
	}
	attrs = append(attrs, "duration", time.Since(begin), "err", *err)
	s.logger.Info("doc lookup", attrs...)
}
