package streetmap

import (
	"errors"
	"log/slog"
)

// Sentinel errors for streetmap operations.
var (
	// ErrUnknownNode indicates a reference to a node ID not in the graph.
	ErrUnknownNode = errors.New("streetmap: unknown node")
	// ErrBadInput indicates malformed OSM input.
	ErrBadInput = errors.New("streetmap: malformed osm input")
	// ErrNoNodes indicates there is no navigable node to snap to.
	ErrNoNodes = errors.New("streetmap: no navigable nodes")
	// ErrNoRoute indicates the search did not reach the destination.
	ErrNoRoute = errors.New("streetmap: no route")
)

// earthRadius is the mean Earth radius in metres.
const earthRadius = 6371000.0

// Node is an OSM vertex. Name is empty for unnamed nodes.
type Node struct {
	ID   int64
	Lat  float64
	Lon  float64
	Name string
}

// Location is a named place returned by Augmented.Locations.
type Location struct {
	ID   int64   `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// highways lists the OSM highway classes that become street segments.
var highways = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"living_street":  true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Logger receives a Debug summary of each load.
	Logger *slog.Logger
}

// LoadOption is a functional option for Load.
type LoadOption func(*LoadOptions)

// WithLogger routes load diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *LoadOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultLoadOptions returns options with a discarding logger.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Logger: slog.New(slog.DiscardHandler)}
}
