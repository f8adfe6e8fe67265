package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/mdn"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Docs     hoverdoc.DocService
	Service  *mdn.Service
	Cache    hoverdoc.DocCache
	Sitemaps hoverdoc.SitemapService
	Logger   *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang    string `default:"en-US" help:"Documentation language"`
	Sqlite  string `help:"Use a SQLite cache database at this path instead of the cache directory"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Lookup LookupCmd `cmd:"" help:"Look up documentation for an element or attribute"`
	Warm   WarmCmd   `cmd:"" help:"Pre-populate the cache with element documentation"`
	Clean  CleanCmd  `cmd:"" help:"Remove expired entries from the cache"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Kind     string `arg:"" enum:"element,global,attr" help:"What to look up: element, global, or attr"`
	Name     string `arg:"" help:"Element or attribute name"`
	Element  string `short:"e" help:"Owning element for attr lookups (e.g. video for autoplay)"`
	Markdown bool   `short:"m" help:"Render the result as markdown"`
}

// WarmCmd is the "warm" subcommand.
type WarmCmd struct {
	Names       []string `arg:"" optional:"" help:"Element names to warm"`
	Discover    bool     `short:"d" help:"Discover element pages from the site's sitemap"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `short:"r" default:"2" help:"Fetches per second"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct{}
