package streetmap

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

type osmTag struct {
	K string `xml:"k,attr"`
	V string `xml:"v,attr"`
}

type osmNode struct {
	ID   int64    `xml:"id,attr"`
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Tags []osmTag `xml:"tag"`
}

type osmWay struct {
	ID   int64 `xml:"id,attr"`
	Refs []struct {
		Ref int64 `xml:"ref,attr"`
	} `xml:"nd"`
	Tags []osmTag `xml:"tag"`
}

func tag(tags []osmTag, k string) string {
	for _, t := range tags {
		if t.K == k {
			return t.V
		}
	}

	return ""
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, opts ...LoadOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses an OSM XML document, plain or compressed, into a Graph.
//
// Every <node> is kept. A <way> contributes segments only if its highway tag
// is one of the street classes; refs to nodes absent from the document split
// the way rather than failing the load.
//
// Returns ErrBadInput (wrapping the decoder error) on malformed input.
func Load(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	src, closeSrc, err := decompress(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	defer closeSrc()

	g := NewGraph()
	var ways []osmWay
	dec := xml.NewDecoder(src)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "node":
			var n osmNode
			if err := dec.DecodeElement(&n, &se); err != nil {
				return nil, fmt.Errorf("%w: node: %w", ErrBadInput, err)
			}
			g.AddNode(Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Name: tag(n.Tags, "name")})
		case "way":
			var w osmWay
			if err := dec.DecodeElement(&w, &se); err != nil {
				return nil, fmt.Errorf("%w: way: %w", ErrBadInput, err)
			}
			if highways[tag(w.Tags, "highway")] {
				ways = append(ways, w)
			}
		}
	}

	// Ways may precede the nodes they reference, so link them last.
	var segments, skipped int
	for _, w := range ways {
		for i := 1; i < len(w.Refs); i++ {
			a, b := w.Refs[i-1].Ref, w.Refs[i].Ref
			if err := g.AddWay(a, b); err != nil {
				skipped++
				continue
			}
			segments++
		}
	}

	cfg.Logger.Debug("streetmap: osm loaded",
		"nodes", g.Len(),
		"ways", len(ways),
		"segments", segments,
		"skipped_segments", skipped,
	)

	return g, nil
}

// decompress sniffs the first bytes of r and wraps it in the matching
// decoder. Unrecognized input is returned as is.
func decompress(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case bytes.HasPrefix(head, magicLZ4):
		return lz4.NewReader(br), func() {}, nil
	}

	return br, func() {}, nil
}
