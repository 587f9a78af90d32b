// Command bearmaps runs A* over the bundled search graphs and prints a
// summary of each solve.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bearmaps"
	"github.com/katalvlaran/bearmaps/astar"
	"github.com/katalvlaran/bearmaps/gridgraph"
	"github.com/katalvlaran/bearmaps/puzzle"
	"github.com/katalvlaran/bearmaps/streetmap"
)

const usage = `bearmaps: A* shortest paths over puzzles, terrain and street maps

USAGE:
  bearmaps [flags]

FLAGS:
  -hop <start>:<goal>      Integer-hop puzzle, e.g. 3:10
  -board <file>            Sliding-tile puzzle file (N, then N rows of tiles)
  -grid <w>x<h>            OpenSimplex terrain, searched corner to corner
  -seed <n>                Terrain seed (default: 1)
  -diag                    Allow diagonal moves on the terrain
  -osm <file>              OSM XML street map, optionally gzip/zstd/lz4 compressed
  -route <lon,lat:lon,lat> Route between two coordinates on -osm
  -prefix <text>           List place names on -osm starting with text
  -timeout <duration>      Per-solve time budget (default: 30s)
  -log-format text|json    Log record format on stderr (default: text)
  -log-level <level>       debug, info, warn or error (default: info)

Each requested demo runs in its own goroutine with its own run id.
`

// config holds the parsed command line.
type config struct {
	hop       string
	board     string
	grid      string
	seed      int64
	diag      bool
	osm       string
	route     string
	prefix    string
	timeout   time.Duration
	logFormat string
	logLevel  string
}

// demo is one independent solve; it returns the text to print.
type demo struct {
	name  string
	solve func(opts ...astar.Option) (string, error)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	demos, err := buildDemos(cfg, logger)
	if err != nil {
		return err
	}
	if len(demos) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("nothing to solve: pass at least one of -hop, -board, -grid, -route, -prefix")
	}

	outputs := make([]string, len(demos))
	ids := make([]string, len(demos))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range demos {
		ids[i] = uuid.NewString()
		l := logger.WithRunID(ids[i]).WithDemo(d.name)
		g.Go(func() error {
			out, err := d.solve(
				astar.WithTimeout(cfg.timeout),
				astar.WithLogger(l.Logger),
				astar.WithContext(gctx),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", d.name, err)
			}
			outputs[i] = out
			l.Info("demo finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, d := range demos {
		fmt.Fprintf(stdout, "== %s (run %s) ==\n%s\n", d.name, ids[i], outputs[i])
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("bearmaps", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.hop, "hop", "", "")
	fs.StringVar(&cfg.board, "board", "", "")
	fs.StringVar(&cfg.grid, "grid", "", "")
	fs.Int64Var(&cfg.seed, "seed", 1, "")
	fs.BoolVar(&cfg.diag, "diag", false, "")
	fs.StringVar(&cfg.osm, "osm", "", "")
	fs.StringVar(&cfg.route, "route", "", "")
	fs.StringVar(&cfg.prefix, "prefix", "", "")
	fs.DurationVar(&cfg.timeout, "timeout", astar.DefaultTimeout, "")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, usage)
		return cfg, err
	}
	if fs.NArg() > 0 {
		fmt.Fprint(stderr, usage)
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.timeout < 0 {
		return cfg, fmt.Errorf("timeout must be non-negative, got %s", cfg.timeout)
	}
	if (cfg.route != "" || cfg.prefix != "") && cfg.osm == "" {
		return cfg, errors.New("-route and -prefix need -osm")
	}

	return cfg, nil
}

func newLogger(cfg config, stderr io.Writer) (*bearmaps.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	switch cfg.logFormat {
	case "text":
		return bearmaps.NewTextLogger(stderr, level), nil
	case "json":
		return bearmaps.NewJSONLogger(stderr, level), nil
	}

	return nil, fmt.Errorf("unknown log format %q", cfg.logFormat)
}

func buildDemos(cfg config, logger *bearmaps.Logger) ([]demo, error) {
	var demos []demo

	if cfg.hop != "" {
		start, goal, err := parsePair(cfg.hop, ":")
		if err != nil {
			return nil, fmt.Errorf("-hop: %w", err)
		}
		demos = append(demos, demo{name: "hop", solve: func(opts ...astar.Option) (string, error) {
			res, err := astar.Solve[int](puzzle.IntegerHop{}, start, goal, opts...)
			if err != nil {
				return "", err
			}
			return res.Summary(" => "), nil
		}})
	}

	if cfg.board != "" {
		b, err := readBoard(cfg.board)
		if err != nil {
			return nil, fmt.Errorf("-board: %w", err)
		}
		demos = append(demos, demo{name: "board", solve: func(opts ...astar.Option) (string, error) {
			res, err := astar.Solve[puzzle.Board](puzzle.BoardGraph{}, b, puzzle.Solved(b.Size()), opts...)
			if err != nil {
				return "", err
			}
			return res.Summary("\n"), nil
		}})
	}

	if cfg.grid != "" {
		w, h, err := parsePair(cfg.grid, "x")
		if err != nil {
			return nil, fmt.Errorf("-grid: %w", err)
		}
		topts := gridgraph.DefaultTerrainOptions()
		topts.Seed = cfg.seed
		if cfg.diag {
			topts.Grid.Conn = gridgraph.Conn8
		}
		gg, err := gridgraph.NewTerrain(w, h, topts)
		if err != nil {
			return nil, fmt.Errorf("-grid: %w", err)
		}
		demos = append(demos, demo{name: "grid", solve: func(opts ...astar.Option) (string, error) {
			start, goal := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: w - 1, Y: h - 1}
			res, err := astar.Solve[gridgraph.Cell](gg, start, goal, opts...)
			if err != nil {
				return "", err
			}
			return res.Summary(" => "), nil
		}})
	}

	if cfg.osm != "" {
		g, err := streetmap.LoadFile(cfg.osm, streetmap.WithLogger(logger.Logger))
		if err != nil {
			return nil, fmt.Errorf("-osm: %w", err)
		}
		a := streetmap.Augment(g)
		if cfg.route != "" {
			demos = append(demos, routeDemo(a, cfg.route))
		}
		if cfg.prefix != "" {
			demos = append(demos, demo{name: "prefix", solve: func(...astar.Option) (string, error) {
				return strings.Join(a.LocationsByPrefix(cfg.prefix), "\n") + "\n", nil
			}})
		}
	}

	return demos, nil
}

func routeDemo(a *streetmap.Augmented, coords string) demo {
	return demo{name: "route", solve: func(opts ...astar.Option) (string, error) {
		from, to, ok := strings.Cut(coords, ":")
		if !ok {
			return "", fmt.Errorf("want lon,lat:lon,lat, got %q", coords)
		}
		lon1, lat1, err := parseCoord(from)
		if err != nil {
			return "", err
		}
		lon2, lat2, err := parseCoord(to)
		if err != nil {
			return "", err
		}

		path, err := streetmap.Route(a, lon1, lat1, lon2, lat2, opts...)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(path))
		for i, id := range path {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return fmt.Sprintf("Route of %d nodes:\n%s\n", len(path), strings.Join(parts, " => ")), nil
	}}
}

func readBoard(path string) (puzzle.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Board{}, err
	}
	defer f.Close()

	return puzzle.ParseBoard(f)
}

// parsePair splits "a<sep>b" into two integers.
func parsePair(s, sep string) (int, int, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("want <n>%s<n>, got %q", sep, s)
	}
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseCoord(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want lon,lat, got %q", s)
	}
	lon, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, err
	}
	lat, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, err
	}

	return lon, lat, nil
}
