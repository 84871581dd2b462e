// Command pathsearch runs one shortest-path query described by a TOML file
// and prints the path and its cost.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathsearch"
	"github.com/katalvlaran/pathsearch/internal/config"
	"github.com/katalvlaran/pathsearch/metrics"
	"github.com/katalvlaran/pathsearch/search"
)

// Exit statuses.
const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

const helpMessage = `
pathsearch finds a shortest path between two vertices of the graph
described by a TOML configuration file.

Usage: pathsearch -config <file.toml> [options]

  -config      (string)  TOML file with [graph] or [grid], [query], [log], [metrics]
  -algorithm   (string)  overrides query.algorithm: bfs, ucs, astar,
                         bidirectional-ucs, bidirectional-astar
  -heuristic   (string)  overrides query.heuristic: euclidean, manhattan, null
  -from        (string)  overrides query.start
  -to          (string)  overrides query.goal
  -h, -help    (flag)    show this message

Exit status: 0 path found, 1 error, 2 no path.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the query and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpMessage) }

	var (
		configPath = fs.String("config", "", "")
		algorithm  = fs.String("algorithm", "", "")
		heur       = fs.String("heuristic", "", "")
		from       = fs.String("from", "", "")
		to         = fs.String("to", "", "")
		showHelp   bool
	)
	fs.BoolVar(&showHelp, "help", false, "")
	fs.BoolVar(&showHelp, "h", false, "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if showHelp {
		fs.Usage()
		return exitOK
	}
	if *configPath == "" {
		fmt.Fprintln(stderr, "pathsearch: -config is required")
		fs.Usage()
		return exitError
	}

	cfg, err := config.Read(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "pathsearch:", err)
		return exitError
	}
	if *algorithm != "" {
		cfg.Query.Algorithm = *algorithm
	}
	if *heur != "" {
		cfg.Query.Heuristic = *heur
	}
	if *from != "" {
		cfg.Query.Start = *from
	}
	if *to != "" {
		cfg.Query.Goal = *to
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "pathsearch:", err)
		return exitError
	}

	logger := cfg.Logger(stderr)
	code, err := query(ctx, cfg, logger, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "pathsearch:", err)
	}

	return code
}

// query builds the graph, runs the configured search and prints the result.
func query(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) (int, error) {
	alg, err := cfg.Algorithm()
	if err != nil {
		return exitError, err
	}
	h, err := cfg.Heuristic()
	if err != nil {
		return exitError, err
	}
	g, err := cfg.BuildGraph()
	if err != nil {
		return exitError, err
	}

	opts := []search.Option{search.WithContext(ctx), search.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		col, err := metrics.New(reg)
		if err != nil {
			return exitError, err
		}
		opts = append(opts, search.WithCollector(col))
	}

	res, err := pathsearch.Run(alg, g, cfg.Query.Start, cfg.Query.Goal, h, opts...)
	if err != nil {
		return exitError, err
	}
	logger.InfoContext(ctx, "query finished", "algorithm", alg.String(), "found", res.Found, "expanded", res.Expanded)

	code := exitOK
	if res.Found {
		fmt.Fprintf(stdout, "path: %s\ncost: %g\n", strings.Join(res.Path, " -> "), res.Cost)
	} else {
		fmt.Fprintf(stdout, "no path from %s to %s\n", cfg.Query.Start, cfg.Query.Goal)
		code = exitNoPath
	}
	fmt.Fprintf(stdout, "expanded: %d\n", res.Expanded)

	if reg != nil {
		if err = metrics.WriteText(stdout, reg); err != nil {
			return exitError, err
		}
	}

	return code, nil
}
