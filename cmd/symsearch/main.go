package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/symdex"
	symfs "github.com/fwojciec/symdex/fs"
	symslog "github.com/fwojciec/symdex/slog"
	"github.com/fwojciec/symdex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if symdex.ErrorCode(err) == symdex.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error returned by Run to the process exit status.
// A missing catalog exits with 2 so scripts can tell it from usage errors.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case symdex.ErrorCode(err) == symdex.ENOTFOUND:
		return 2
	default:
		return 1
	}
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
		kong.Name("symsearch"),
		kong.Description("Search indexed symbols by label keywords"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return symdex.Errorf(symdex.EINVALID, "%s", err)
	}

	if len(cli.Terms) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return symdex.Errorf(symdex.EINVALID, "at least one search term is required")
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cmd := &SearchCmd{
		Terms:    cli.Terms,
		Previews: cli.Previews,
		Source:   cli.Manifest,
	}

	if cli.DB != "" {
		cmd.Source = cli.DB
		if _, err := os.Stat(cli.DB); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "%s not found. Run: symindex --db %s\n", cli.DB, cli.DB)
			return symdex.Errorf(symdex.ENOTFOUND, "%s not found", cli.DB)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Symbols = sqlite.NewSymbolService(m.DB)
	} else {
		deps.Symbols = symfs.NewManifestService(cli.Manifest)
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Symbols = symslog.NewLoggingSymbolFinder(deps.Symbols, logger)
	}

	return cmd.Run(deps)
}
