package trie

import "unicode/utf8"

// TST is a Set backed by a ternary search trie.
type TST struct {
	root *tstNode
	n    int
}

type tstNode struct {
	c                rune
	isKey            bool
	left, mid, right *tstNode
}

var _ Set = (*TST)(nil)

// NewTST returns an empty TST.
func NewTST() *TST { return &TST{} }

// Add inserts key. The empty key is ignored.
func (t *TST) Add(key string) {
	if key == "" {
		return
	}
	link := &t.root
	rs := []rune(key)
	for d := 0; ; {
		if *link == nil {
			*link = &tstNode{c: rs[d]}
		}
		n := *link
		switch {
		case rs[d] < n.c:
			link = &n.left
		case rs[d] > n.c:
			link = &n.right
		case d < len(rs)-1:
			link = &n.mid
			d++
		default:
			if !n.isKey {
				n.isKey = true
				t.n++
			}
			return
		}
	}
}

// Contains reports whether key was added.
func (t *TST) Contains(key string) bool {
	if key == "" {
		return false
	}
	n := t.find(key)

	return n != nil && n.isKey
}

// find returns the node holding the last rune of s, or nil. s must be non-empty.
func (t *TST) find(s string) *tstNode {
	rs := []rune(s)
	n := t.root
	for d := 0; n != nil; {
		switch {
		case rs[d] < n.c:
			n = n.left
		case rs[d] > n.c:
			n = n.right
		case d < len(rs)-1:
			n = n.mid
			d++
		default:
			return n
		}
	}

	return nil
}

// KeysWithPrefix returns every stored key starting with prefix, in
// lexicographic order.
func (t *TST) KeysWithPrefix(prefix string) []string {
	var keys []string
	if prefix == "" {
		collect(t.root, nil, &keys)
		return keys
	}

	n := t.find(prefix)
	if n == nil {
		return nil
	}
	if n.isKey {
		keys = append(keys, prefix)
	}
	collect(n.mid, []rune(prefix), &keys)

	return keys
}

// collect appends the keys below x in order. path spells the prefix above x.
func collect(x *tstNode, path []rune, keys *[]string) {
	if x == nil {
		return
	}
	collect(x.left, path, keys)
	path = append(path, x.c)
	if x.isKey {
		*keys = append(*keys, string(path))
	}
	collect(x.mid, path, keys)
	collect(x.right, path[:len(path)-1], keys)
}

// LongestPrefixOf returns the longest stored key that is a prefix of s, or "".
func (t *TST) LongestPrefixOf(s string) string {
	best, i := 0, 0
	n := t.root
	for n != nil && i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r < n.c:
			n = n.left
		case r > n.c:
			n = n.right
		default:
			i += size
			if n.isKey {
				best = i
			}
			n = n.mid
		}
	}

	return s[:best]
}

// Len returns the number of stored keys.
func (t *TST) Len() int { return t.n }

// Clear removes every key.
func (t *TST) Clear() {
	t.root = nil
	t.n = 0
}
