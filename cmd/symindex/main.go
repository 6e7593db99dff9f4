package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/symdex"
	symetree "github.com/fwojciec/symdex/etree"
	"github.com/fwojciec/symdex/fs"
	"github.com/fwojciec/symdex/index"
	symslog "github.com/fwojciec/symdex/slog"
	"github.com/fwojciec/symdex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText returns the message of application errors and the full text of
// anything else.
func errorText(err error) string {
	if symdex.ErrorCode(err) == symdex.EINTERNAL {
		return err.Error()
	}
	return symdex.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// SQLite database opened when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("symindex"),
		kong.Description("Index the symbol panels of an SVG symbology guide"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return symdex.Errorf(symdex.EINVALID, "%s", err)
	}

	policy, err := symdex.ParseCollisionPolicy(cli.Collisions)
	if err != nil {
		return err
	}

	scanner := symetree.NewScanner()
	scanner.Labels.Lang = cli.Lang
	scanner.Labels.FallbackLang = cli.FallbackLang
	if cli.Detect == "geometry" {
		scanner.Detector = symetree.NewDetector(symetree.GeometryBorder{})
	}

	dir := filepath.Clean(cli.Previews)
	previews := fs.NewPreviewStore(filepath.Dir(dir), filepath.Base(dir), policy)
	manifests := fs.NewManifestService(cli.Manifest)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Indexer: &index.Indexer{
			Scanner:   scanner,
			Previews:  previews,
			Manifests: manifests,
		},
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Indexer.Scanner = symslog.NewLoggingPanelScanner(scanner, logger)
		deps.Indexer.Previews = symslog.NewLoggingPreviewStore(previews, logger)
		deps.Indexer.Manifests = symslog.NewLoggingManifestService(manifests, logger)
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set SYMDEX_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Indexer.Catalog = sqlite.NewSymbolService(m.DB)
	}

	cmd := &IndexCmd{
		Input:    cli.Input,
		Manifest: cli.Manifest,
		Previews: cli.Previews,
	}
	return cmd.Run(deps)
}
