package main

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmCmd_NoNames(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newTestDeps()

	cmd := &WarmCmd{}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "Nothing to warm")
}

func TestWarmCmd_WarmsEachNameOnce(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	fetched := make(map[string]int)

	deps, stdout, _ := newTestDeps()
	deps.Docs = &mock.DocService{
		FetchElementFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
			mu.Lock()
			fetched[name]++
			mu.Unlock()
			return &hoverdoc.RichDoc{HTML: "<p>doc</p>"}, nil
		},
	}

	cmd := &WarmCmd{Names: []string{"video", "Audio", "video", "track"}, Concurrency: 2, Rate: 1000}
	require.NoError(t, cmd.Run(deps))

	assert.Equal(t, map[string]int{"video": 1, "audio": 1, "track": 1}, fetched,
		"duplicate names must be fetched once, case-insensitively")
	assert.Contains(t, stdout.String(), "Warmed 3")
}

func TestWarmCmd_CountsMissingAndFailed(t *testing.T) {
	t.Parallel()

	deps, stdout, stderr := newTestDeps()
	deps.Docs = &mock.DocService{
		FetchElementFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
			switch name {
			case "video":
				return &hoverdoc.RichDoc{}, nil
			case "madeup":
				return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no page")
			default:
				return nil, hoverdoc.Errorf(hoverdoc.EUNAVAILABLE, "connection refused")
			}
		},
	}

	cmd := &WarmCmd{Names: []string{"video", "madeup", "broken"}, Concurrency: 1, Rate: 1000}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "Warmed 1, no docs for 1, failed 1.")
	assert.Contains(t, stderr.String(), "warm broken")
}

func TestWarmCmd_Discover(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newTestDeps()
	deps.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *hoverdoc.URLFilter) ([]string, error) {
			assert.Equal(t, hoverdoc.Host, baseURL)
			require.NotNil(t, filter)
			return []string{
				"https://developer.mozilla.org/en-US/docs/Web/HTML/Element/video",
				"https://developer.mozilla.org/en-US/docs/Web/HTML/Element/audio",
			}, nil
		},
	}

	var mu sync.Mutex
	var fetched []string
	deps.Docs = &mock.DocService{
		FetchElementFn: func(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
			mu.Lock()
			fetched = append(fetched, name)
			mu.Unlock()
			return &hoverdoc.RichDoc{}, nil
		},
	}

	cmd := &WarmCmd{Discover: true, Concurrency: 2, Rate: 1000}
	require.NoError(t, cmd.Run(deps))

	assert.ElementsMatch(t, []string{"video", "audio"}, fetched)
	assert.Contains(t, stdout.String(), "Warmed 2")
}

func TestElementPagePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://developer.mozilla.org/en-US/docs/Web/HTML/Element/video", "video"},
		{"https://developer.mozilla.org/fr/docs/Web/HTML/Element/a/", "a"},
		{"https://developer.mozilla.org/en-US/docs/Web/HTML/Global_attributes/class", ""},
		{"https://developer.mozilla.org/en-US/docs/Web/CSS/color", ""},
	}
	for _, tt := range tests {
		m := elementPagePattern.FindStringSubmatch(tt.url)
		if tt.want == "" {
			assert.Nil(t, m, tt.url)
		} else {
			require.NotNil(t, m, tt.url)
			assert.Equal(t, tt.want, m[1])
		}
	}
}
