// Package config loads the TOML file that describes one pathsearch query:
// logging, the graph (explicit edges or a grid map), the query itself and
// optional metrics output.
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[[graph.vertices]]
//	id = "A"
//	x = 0.0
//	y = 0.0
//
//	[[graph.edges]]
//	from = "A"
//	to = "B"
//	weight = 1.5
//
//	[query]
//	algorithm = "astar"
//	heuristic = "euclidean"
//	start = "A"
//	goal = "B"
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pathsearch"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/gridgraph"
	"github.com/katalvlaran/pathsearch/heuristic"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the decoded TOML document.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Graph   GraphConfig   `toml:"graph"`
	Grid    GridConfig    `toml:"grid"`
	Query   QueryConfig   `toml:"query"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// GraphConfig lists an explicit graph. Vertices are only needed for
// positions or isolated vertices; edges create their endpoints.
type GraphConfig struct {
	Vertices []VertexConfig `toml:"vertices"`
	Edges    []EdgeConfig   `toml:"edges"`
}

// VertexConfig is one vertex, optionally positioned. X and Y must be set together.
type VertexConfig struct {
	ID string   `toml:"id"`
	X  *float64 `toml:"x"`
	Y  *float64 `toml:"y"`
}

// EdgeConfig is one undirected weighted edge.
type EdgeConfig struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// GridConfig describes a land/water map in gridgraph.ParseRows notation.
// Vertex IDs are "x,y".
type GridConfig struct {
	Rows          []string `toml:"rows"`
	Conn          int      `toml:"conn"` // 4 or 8
	LandThreshold int      `toml:"land_threshold"`
}

// QueryConfig names the search to run.
type QueryConfig struct {
	Algorithm string `toml:"algorithm"`
	Heuristic string `toml:"heuristic"`
	Start     string `toml:"start"`
	Goal      string `toml:"goal"`
}

// MetricsConfig toggles the Prometheus text dump after the query.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the values used for keys the file leaves out.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info", Format: FormatText},
		Grid:  GridConfig{Conn: 4, LandThreshold: 1},
		Query: QueryConfig{Algorithm: pathsearch.UCS.String()},
	}
}

// Load decodes the TOML file at path over Default and validates it.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read is Load without Validate, for callers that override fields first.
func Read(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}
	if err = rejectUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse is Load for an in-memory document.
func Parse(doc string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}
	if err = rejectUndecoded(md); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func rejectUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}

	return fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
}

// Validate checks every section. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalidConfig, c.Log.Format, FormatText, FormatJSON)
	}

	explicit := len(c.Graph.Edges) > 0 || len(c.Graph.Vertices) > 0
	grid := len(c.Grid.Rows) > 0
	switch {
	case explicit && grid:
		return fmt.Errorf("%w: [graph] and [grid] are mutually exclusive", ErrInvalidConfig)
	case !explicit && !grid:
		return fmt.Errorf("%w: no graph: set [graph] edges/vertices or [grid] rows", ErrInvalidConfig)
	}
	if grid && c.Grid.Conn != 4 && c.Grid.Conn != 8 {
		return fmt.Errorf("%w: grid.conn %d (want 4 or 8)", ErrInvalidConfig, c.Grid.Conn)
	}
	for i, v := range c.Graph.Vertices {
		if (v.X == nil) != (v.Y == nil) {
			return fmt.Errorf("%w: graph.vertices[%d] %q: x and y must be set together", ErrInvalidConfig, i, v.ID)
		}
	}

	if c.Query.Start == "" || c.Query.Goal == "" {
		return fmt.Errorf("%w: query.start and query.goal are required", ErrInvalidConfig)
	}
	if _, err := c.Algorithm(); err != nil {
		return err
	}
	if _, err := c.Heuristic(); err != nil {
		return err
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return lvl, nil
}

// Algorithm parses query.algorithm.
func (c Config) Algorithm() (pathsearch.Algorithm, error) {
	alg, err := pathsearch.ParseAlgorithm(c.Query.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: query.algorithm: %w", ErrInvalidConfig, err)
	}
	return alg, nil
}

// Heuristic parses query.heuristic; empty means Euclidean.
func (c Config) Heuristic() (heuristic.Func, error) {
	h, err := heuristic.ByName(c.Query.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: query.heuristic: %w", ErrInvalidConfig, err)
	}
	return h, nil
}

// Logger builds a slog.Logger writing to w with the configured level and format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// BuildGraph materializes the configured graph.
func (c Config) BuildGraph() (*core.Graph, error) {
	if len(c.Grid.Rows) > 0 {
		opts := gridgraph.GridOptions{LandThreshold: c.Grid.LandThreshold, Conn: gridgraph.Conn4}
		if c.Grid.Conn == 8 {
			opts.Conn = gridgraph.Conn8
		}
		gg, err := gridgraph.ParseRows(c.Grid.Rows, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
		}
		return gg.ToCoreGraph()
	}

	g := core.NewGraph()
	for i, v := range c.Graph.Vertices {
		var err error
		if v.X != nil {
			err = g.SetPosition(v.ID, core.Point{X: *v.X, Y: *v.Y})
		} else {
			err = g.AddVertex(v.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: graph.vertices[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	for i, e := range c.Graph.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: graph.edges[%d]: %w", ErrInvalidConfig, i, err)
		}
	}

	return g, nil
}
