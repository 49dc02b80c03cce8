package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"fastfact"
	"fastfact/extract"
	"fastfact/gemini"
	"fastfact/goquery"
	"fastfact/htmltomarkdown"
	ffhttp "fastfact/http"
	"fastfact/ingest"
	"fastfact/sqlite"
	"fastfact/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService    fastfact.RecordService
	IngestRunService fastfact.IngestRunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("fastfact"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fastfact --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FASTFACT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecordService = sqlite.NewRecordService(m.DB)
	m.IngestRunService = sqlite.NewIngestRunService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService
	deps.Runs = m.IngestRunService

	// Wire command-specific dependencies based on command
	if cmd == "ingest" {
		var renderer fastfact.Renderer
		switch cli.Ingest.Renderer {
		case "trafilatura":
			renderer = trafilatura.NewRenderer()
		default:
			renderer = goquery.NewRenderer()
		}

		pipeline := extract.NewPipeline(renderer)
		ingester := ingest.NewIngester(pipeline, m.RecordService, m.IngestRunService)
		ingester.Concurrency = cli.Ingest.Concurrency
		deps.Ingester = ingester
	}

	if cmd == "fetch" {
		fetcher := ffhttp.NewFetcher(
			ffhttp.WithRequestsPerSecond(cli.Fetch.RequestsPerSecond),
		)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Sitemaps = ffhttp.NewSitemapService(nil)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "ask" || cmd == "tag" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, m.RecordService)
		deps.Tagger = gemini.NewTagger(client)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FASTFACT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fastfact.db"
	}
	dir := filepath.Join(home, ".fastfact")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fastfact.db")
}
