package trie

import "slices"

// TrieSet is a Set backed by a map-per-node trie.
type TrieSet struct {
	root *trieNode
	n    int
}

type trieNode struct {
	isKey    bool
	children map[rune]*trieNode
}

var _ Set = (*TrieSet)(nil)

// NewTrieSet returns an empty TrieSet.
func NewTrieSet() *TrieSet {
	return &TrieSet{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Add inserts key. The empty key is ignored.
func (t *TrieSet) Add(key string) {
	if key == "" {
		return
	}
	cur := t.root
	for _, r := range key {
		next, ok := cur.children[r]
		if !ok {
			next = newTrieNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.isKey {
		cur.isKey = true
		t.n++
	}
}

// Contains reports whether key was added.
func (t *TrieSet) Contains(key string) bool {
	if key == "" {
		return false
	}
	n := t.find(key)

	return n != nil && n.isKey
}

// find returns the node reached by spelling s, or nil.
func (t *TrieSet) find(s string) *trieNode {
	cur := t.root
	for _, r := range s {
		cur = cur.children[r]
		if cur == nil {
			return nil
		}
	}

	return cur
}

// KeysWithPrefix returns every stored key starting with prefix, in
// lexicographic order.
func (t *TrieSet) KeysWithPrefix(prefix string) []string {
	start := t.find(prefix)
	if start == nil {
		return nil
	}

	var keys []string
	var walk func(n *trieNode, path []rune)
	walk = func(n *trieNode, path []rune) {
		if n.isKey {
			keys = append(keys, string(path))
		}
		for r, child := range n.children {
			walk(child, append(path, r))
		}
	}
	walk(start, []rune(prefix))
	slices.Sort(keys)

	return keys
}

// LongestPrefixOf returns the longest stored key that is a prefix of s, or "".
func (t *TrieSet) LongestPrefixOf(s string) string {
	cur := t.root
	best := 0
	for i, r := range s {
		cur = cur.children[r]
		if cur == nil {
			break
		}
		if cur.isKey {
			best = i + len(string(r))
		}
	}

	return s[:best]
}

// Len returns the number of stored keys.
func (t *TrieSet) Len() int { return t.n }

// Clear removes every key.
func (t *TrieSet) Clear() {
	t.root = newTrieNode()
	t.n = 0
}
