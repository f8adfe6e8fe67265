package main

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/bloom"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// elementPagePattern matches MDN element reference pages and captures the
// element name.
var elementPagePattern = regexp.MustCompile(`/docs/Web/HTML/Element/([^/]+)/?$`)

// Bloom filter sizing for warm-run deduplication.
const (
	warmExpectedNames     = 1000
	warmFalsePositiveRate = 0.01
)

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	names := c.Names
	if c.Discover {
		discovered, err := c.discoverNames(deps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", hoverdoc.ErrorMessage(err))
			return err
		}
		names = append(names, discovered...)
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to warm. Pass element names or use --discover.")
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	limiter := rate.NewLimiter(rate.Limit(c.Rate), 1)
	seen := bloom.NewFilter(warmExpectedNames, warmFalsePositiveRate)

	var warmed, missing, failed atomic.Int64

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for _, name := range names {
		name := strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen.Test(name) {
			continue
		}
		seen.Add(name)

		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			_, err := deps.Docs.FetchElement(gctx, name)
			switch {
			case err == nil:
				warmed.Add(1)
			case hoverdoc.ErrorCode(err) == hoverdoc.ENOTFOUND:
				missing.Add(1)
			default:
				failed.Add(1)
				fmt.Fprintf(deps.Stderr, "warm %s: %s\n", name, hoverdoc.ErrorMessage(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Warmed %d, no docs for %d, failed %d.\n",
		warmed.Load(), missing.Load(), failed.Load())
	return nil
}

// discoverNames enumerates element reference pages from the site's
// sitemap and extracts the element names.
func (c *WarmCmd) discoverNames(deps *Dependencies) ([]string, error) {
	filter := &hoverdoc.URLFilter{Include: []*regexp.Regexp{elementPagePattern}}
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, hoverdoc.Host, filter)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(urls))
	for _, u := range urls {
		if m := elementPagePattern.FindStringSubmatch(u); m != nil {
			names = append(names, m[1])
		}
	}
	return names, nil
}
