package streetmap

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/bearmaps/pointset"
	"github.com/katalvlaran/bearmaps/trie"
)

// Augmented adds nearest-node and place-name lookups to a Graph.
// The indexes are built once by Augment; later changes to the Graph are not
// reflected in them.
type Augmented struct {
	*Graph

	navigable *roaring64.Bitmap
	tree      *pointset.KDTree
	byPoint   map[pointset.Point]int64
	names     trie.Set
	byName    map[string][]Node // cleaned name → nodes, by ID
}

// Augment indexes g. Navigable nodes (with at least one segment) go into
// the KD-tree keyed by (lon, lat); when several share a position the lowest
// ID wins. Every named node, navigable or not, is indexed by cleaned name.
func Augment(g *Graph) *Augmented {
	a := &Augmented{
		Graph:     g,
		navigable: roaring64.New(),
		tree:      pointset.NewKDTree(nil),
		byPoint:   make(map[pointset.Point]int64),
		names:     trie.NewTrieSet(),
		byName:    make(map[string][]Node),
	}

	for _, n := range g.Nodes() {
		if len(g.adj[n.ID]) > 0 {
			a.navigable.Add(uint64(n.ID))
			p := pointset.Point{X: n.Lon, Y: n.Lat}
			if _, dup := a.byPoint[p]; !dup {
				a.byPoint[p] = n.ID
				a.tree.Insert(p)
			}
		}
		if n.Name == "" {
			continue
		}
		clean := CleanString(n.Name)
		if clean == "" {
			continue
		}
		a.names.Add(clean)
		a.byName[clean] = append(a.byName[clean], n)
	}

	return a
}

// Navigable reports whether id has at least one street segment.
func (a *Augmented) Navigable(id int64) bool {
	return a.navigable.Contains(uint64(id))
}

// NavigableCount returns the number of navigable nodes.
func (a *Augmented) NavigableCount() uint64 {
	return a.navigable.GetCardinality()
}

// Closest returns the navigable node nearest to (lon, lat), measuring
// plain Euclidean distance in degrees.
func (a *Augmented) Closest(lon, lat float64) (int64, error) {
	p, err := a.tree.Nearest(lon, lat)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoNodes, err)
	}

	return a.byPoint[p], nil
}

// LocationsByPrefix returns the distinct full names of places whose cleaned
// name starts with the cleaned prefix, ordered by cleaned name and then by
// node ID.
func (a *Augmented) LocationsByPrefix(prefix string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range a.names.KeysWithPrefix(CleanString(prefix)) {
		for _, n := range a.byName[k] {
			if !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n.Name)
			}
		}
	}

	return out
}

// Locations returns every place whose cleaned name equals the cleaned name,
// ordered by ID.
func (a *Augmented) Locations(name string) []Location {
	nodes := a.byName[CleanString(name)]
	out := make([]Location, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Location{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Name: n.Name})
	}

	return out
}

// CleanString lowercases s and drops everything but ASCII letters and spaces.
func CleanString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == ' ':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}

	return b.String()
}
