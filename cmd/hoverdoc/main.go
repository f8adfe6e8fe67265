package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/bcd"
	"github.com/fwojciec/hoverdoc/cache"
	"github.com/fwojciec/hoverdoc/fs"
	"github.com/fwojciec/hoverdoc/goquery"
	"github.com/fwojciec/hoverdoc/htmltomarkdown"
	hovhttp "github.com/fwojciec/hoverdoc/http"
	"github.com/fwojciec/hoverdoc/mdn"
	"github.com/fwojciec/hoverdoc/readability"
	hovslog "github.com/fwojciec/hoverdoc/slog"
	"github.com/fwojciec/hoverdoc/sqlite"
	"github.com/fwojciec/hoverdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache directory. Set before calling Run().
	CacheDir string

	// Path to the browser compatibility dataset. Optional; without it
	// docs carry no support summaries.
	BCDPath string

	// SQLite database used when the sqlite cache tier is selected.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocService hoverdoc.DocService
	Cache      hoverdoc.DocCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
		BCDPath:  os.Getenv("HOVERDOC_BCD"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hoverdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hoverdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	deps.Logger = logger

	store, err := m.openStore(cli, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	c, err := cache.New(store, cache.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer c.Close()
	m.Cache = c
	deps.Cache = c

	settings := hoverdoc.Settings{Language: hoverdoc.Language(cli.Lang), Enabled: true}
	if err := settings.Validate(); err != nil {
		return err
	}

	fetcher := hovslog.NewLoggingFetcher(hovhttp.NewFetcher(), logger)
	defer fetcher.Close()

	svc := mdn.NewService()
	svc.Fetcher = fetcher
	svc.Cache = c
	svc.Sanitizers = []hoverdoc.Sanitizer{
		goquery.NewSanitizer(),
		trafilatura.NewSanitizer(),
		readability.NewSanitizer(),
	}
	svc.Converter = htmltomarkdown.NewConverter()
	svc.Settings = settings

	if m.BCDPath != "" {
		compat, err := bcd.LoadFile(m.BCDPath)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set HOVERDOC_BCD to a browser-compat-data JSON file")
			return fmt.Errorf("failed to load compatibility dataset: %w", err)
		}
		svc.Compat = compat
	}

	m.DocService = hovslog.NewLoggingDocService(svc, logger)
	deps.Docs = m.DocService
	deps.Service = svc
	deps.Sitemaps = hovslog.NewLoggingSitemapService(hovhttp.NewSitemapService(nil), logger)

	return kongCtx.Run(deps)
}

// openStore selects the persistent cache tier: a SQLite database when
// --sqlite is given, a directory of JSON records otherwise.
func (m *Main) openStore(cli *CLI, logger *slog.Logger) (hoverdoc.EntryStore, error) {
	if cli.Sqlite != "" {
		m.DB = sqlite.NewDB(cli.Sqlite)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open cache database at %q: %w", cli.Sqlite, err)
		}
		return hovslog.NewLoggingStore(sqlite.NewStore(m.DB), logger), nil
	}

	store, err := fs.NewStore(m.CacheDir, fs.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache directory at %q: %w", m.CacheDir, err)
	}
	return hovslog.NewLoggingStore(store, logger), nil
}

func defaultCacheDir() string {
	if dir := os.Getenv("HOVERDOC_CACHE"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hoverdoc"
	}
	return filepath.Join(home, ".hoverdoc")
}
