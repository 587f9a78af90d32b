// Package trie provides string sets with prefix queries.
//
// Two implementations share the Set interface:
//
//   - TrieSet keeps a map of children per node. Lookups cost O(L) for a key
//     of length L regardless of alphabet size.
//   - TST is a ternary search trie: each node holds one rune and left, mid
//     and right links, which uses far less memory on sparse alphabets.
//
// Keys are compared rune by rune. The empty string is never a member: Add("")
// is ignored and Contains("") is false. KeysWithPrefix returns keys in
// ascending order, so both implementations answer identically.
//
// Neither type is safe for concurrent mutation.
package trie

// Set is a collection of distinct non-empty strings.
type Set interface {
	// Add inserts key; the empty key is ignored.
	Add(key string)
	// Contains reports whether key was added.
	Contains(key string) bool
	// KeysWithPrefix returns every key starting with prefix, sorted.
	KeysWithPrefix(prefix string) []string
	// LongestPrefixOf returns the longest key that is a prefix of s, or "".
	LongestPrefixOf(s string) string
	// Len returns the number of keys.
	Len() int
	// Clear removes every key.
	Clear()
}
