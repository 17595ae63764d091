// Command sparsecorr prints the Pearson correlation of two columns of a sparse
// matrix stored in a YAML document (see internal/config for the format).
//
//	sparsecorr -input m.yaml -col1 0 -col2 1
//
// A constant column prints NaN. Logs go to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sparsecorr/corr"
	"github.com/katalvlaran/sparsecorr/csc"
	"github.com/katalvlaran/sparsecorr/internal/config"
	"github.com/katalvlaran/sparsecorr/internal/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
// Exit codes: 0 ok, 1 load/compute failure, 2 usage error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sparsecorr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input     = fs.String("input", "", "path to the YAML matrix document (required)")
		col1      = fs.Int("col1", 0, "first column index")
		col2      = fs.Int("col2", 1, "second column index")
		logLevel  = fs.String("log-level", "warn", "log level: debug, info, warn, error")
		logFormat = fs.String("log-format", "text", "log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *input == "" {
		fmt.Fprintln(stderr, "sparsecorr: -input is required")
		fs.Usage()
		return 2
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "sparsecorr:", err)
		return 2
	}
	var logger *logging.Logger
	switch *logFormat {
	case "text":
		logger = logging.NewTextLogger(stderr, level)
	case "json":
		logger = logging.NewJSONLogger(stderr, level)
	default:
		fmt.Fprintf(stderr, "sparsecorr: unknown log format %q\n", *logFormat)
		return 2
	}
	logger = logger.WithInput(*input)

	m, err := load(*input)
	if err != nil {
		logger.LogLoad(ctx, "", 0, 0, 0, err)
		return 1
	}
	logger.LogLoad(ctx, csc.LayoutCSC.String(), m.Rows(), m.Cols(), m.NNZ(), nil)

	r, err := corr.Pearson(m, *col1, *col2)
	logger.LogCorrelation(ctx, *col1, *col2, r, err)
	if err != nil {
		return 1
	}
	fmt.Fprintf(stdout, "%g\n", r)

	return 0
}

// load reads the document and adapts it into a CSC matrix.
func load(path string) (*csc.Matrix, error) {
	raw, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return csc.FromExporter(raw)
}
