// corvid is a minimal command-line driver for the engine: it loads an optional TOML
// configuration file, wires an opening book if one is configured, and exposes a
// line-oriented console protocol for manual play and analysis (see pkg/engine/console).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/console"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
)

var (
	configPath = flag.String("config", "", "Path to a TOML configuration file (defaults applied if absent)")
	hash       = flag.Uint("hash", 0, "Transposition table size in MB (overrides config; 0 keeps the config value)")
	noise      = flag.Uint("noise", 0, "Evaluation noise in millipawns (overrides config; 0 keeps the config value)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a chess engine exposing a line-oriented console protocol for
manual play and analysis.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		logw.Exitf(ctx, "Invalid configuration: %v", err)
	}
	if *hash > 0 {
		cfg.HashMB = *hash
	}
	if *noise > 0 {
		cfg.Noise = *noise
	}

	s := search.Negamax{Eval: eval.Default{}}

	opts := []engine.Option{
		engine.WithOptions(engine.Options{Hash: cfg.HashMB, Noise: cfg.Noise}),
		engine.WithZobrist(time.Now().UnixNano()),
	}
	if b := loadBook(ctx, cfg.BookPath); b != nil {
		opts = append(opts, engine.WithBook(b))
	}

	e := engine.New(ctx, "corvid", "corvidchess", s, opts...)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}

func loadConfig(ctx context.Context) (config.Config, error) {
	if *configPath == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	logw.Infof(ctx, "Loaded configuration from %v", *configPath)
	return cfg, nil
}

// loadBook reads a text opening book: one line per row, each a space-separated sequence of
// long-algebraic moves from the starting position. Blank lines and lines starting with '#'
// are skipped. A missing path, unreadable file or malformed line logs and disables the book
// rather than failing startup, matching the spec's "book-parse failures are silently skipped"
// error-handling design (§7).
func loadBook(ctx context.Context, path string) search.Book {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logw.Errorf(ctx, "Book %v not loaded: %v", path, err)
		return nil
	}

	var lines []book.Line
	for _, l := range strings.Split(string(raw), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		lines = append(lines, book.Line(strings.Fields(l)))
	}

	b, err := book.New(lines)
	if err != nil {
		logw.Errorf(ctx, "Book %v not loaded: %v", path, err)
		return nil
	}
	logw.Infof(ctx, "Loaded opening book from %v (%v lines)", path, len(lines))
	return b
}
