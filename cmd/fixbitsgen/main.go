// Command fixbitsgen emits sized bit-set sources from the canonical
// instance by token substitution.
//
// Usage:
//
//	fixbitsgen -src bitset128.go -words 6,8 [-out .]
//
// For each word count it writes bitset<words*32>.go into the output
// directory. The source word count is derived from the -src file name.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fixbits/internal/gen"
)

func main() {
	var (
		src     = flag.String("src", "bitset128.go", "canonical bit-set source file")
		words   = flag.String("words", "", "comma-separated word counts to emit")
		out     = flag.String("out", ".", "output directory")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if err := run(logger, *src, *words, *out); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, src, words, out string) error {
	if words == "" {
		return fmt.Errorf("-words is required")
	}

	srcWords, err := wordsFromName(src)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	logger.Debug("read canonical source", "file", src, "words", srcWords)

	var g errgroup.Group
	for _, field := range strings.Split(words, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("invalid word count %q: %w", field, err)
		}
		g.Go(func() error {
			rendered, err := gen.Render(data, srcWords, n)
			if err != nil {
				return err
			}
			name := filepath.Join(out, fmt.Sprintf("bitset%d.go", n*32))
			if err := os.WriteFile(name, rendered, 0o644); err != nil {
				return err
			}
			logger.Info("wrote bit-set source", "file", name, "words", n, "bits", n*32)
			return nil
		})
	}
	return g.Wait()
}

// wordsFromName derives the word count from a file name like bitset128.go.
func wordsFromName(src string) (int, error) {
	digits := strings.TrimFunc(filepath.Base(src), func(r rune) bool {
		return r < '0' || r > '9'
	})
	bits, err := strconv.Atoi(digits)
	if err != nil || bits <= 0 || bits%32 != 0 {
		return 0, fmt.Errorf("cannot derive a word count from %q", src)
	}
	return bits / 32, nil
}
