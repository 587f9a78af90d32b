// Package streetmap builds routable street graphs from OpenStreetMap data.
//
// What:
//
//   - Graph stores OSM nodes and the bidirectional street segments between
//     them. Segment weights are great-circle distances in metres, and the
//     same distance to the goal serves as an admissible A* heuristic, so a
//     *Graph can be passed directly to astar.Solve.
//   - Load reads OSM XML. Only ways tagged with a drivable or walkable
//     highway class become segments; node "name" tags become place names.
//     Input compressed with gzip, zstd or an lz4 frame is detected from its
//     magic bytes and decompressed on the fly.
//   - Augmented layers lookup indexes over a Graph: a roaring bitmap of
//     navigable nodes (those with at least one segment), a KD-tree over their
//     (lon, lat) positions for Closest, and a trie over cleaned place names
//     for autocomplete.
//   - Route snaps two coordinates to their closest navigable nodes and runs
//     A* between them.
//
// Errors:
//
//   - ErrUnknownNode: a segment or query references a node not in the graph.
//   - ErrBadInput:    the OSM document could not be parsed.
//   - ErrNoNodes:     Closest was called on a graph with no navigable nodes.
//   - ErrNoRoute:     the search ended UNSOLVABLE or TIMEOUT.
package streetmap
