package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/mock"
	hovslog "github.com/fwojciec/hoverdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocService_FetchElement(t *testing.T) {
	t.Parallel()

	t.Run("logs lookup with kind, name and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocService{
			FetchElementFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
				return &hoverdoc.RichDoc{HTML: "<p>video</p>"}, nil
			},
		}

		svc := hovslog.NewLoggingDocService(inner, logger)
		doc, err := svc.FetchElement(context.Background(), "video")

		require.NoError(t, err)
		assert.Equal(t, "<p>video</p>", doc.HTML)
		output := buf.String()
		assert.Contains(t, output, "doc lookup")
		assert.Contains(t, output, "lookup=")
		assert.Contains(t, output, "kind=element")
		assert.Contains(t, output, "name=video")
		assert.Contains(t, output, "bytes=12")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocService{
			FetchElementFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
				return nil, errors.New("network error")
			},
		}

		svc := hovslog.NewLoggingDocService(inner, logger)
		_, err := svc.FetchElement(context.Background(), "video")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}

func TestLoggingDocService_FetchElementAttribute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DocService{
		FetchElementAttributeFn: func(ctx context.Context, name, owningElement string) (*hoverdoc.RichDoc, error) {
			return &hoverdoc.RichDoc{}, nil
		},
	}

	svc := hovslog.NewLoggingDocService(inner, logger)
	_, err := svc.FetchElementAttribute(context.Background(), "autoplay", "video")

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "kind=element-attribute")
	assert.Contains(t, output, "name=autoplay")
	assert.Contains(t, output, "element=video")
}

func TestLoggingDocService_FetchGlobalAttribute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DocService{
		FetchGlobalAttributeFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
			return &hoverdoc.RichDoc{}, nil
		},
	}

	svc := hovslog.NewLoggingDocService(inner, logger)
	_, err := svc.FetchGlobalAttribute(context.Background(), "class")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "kind=global-attribute")
}
