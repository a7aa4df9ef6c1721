// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// trie.go - rune trie with longest-prefix lookup, used by the decoder's
// scanner.

package transcription

import "unicode/utf8"

// trie maps string keys to values and finds the longest key that prefixes
// an input. The zero value is an empty trie.
type trie[T any] struct {
	children map[rune]*trie[T]
	set      bool
	value    T
}

// Set stores a value at key through fn, which also learns whether a value
// was already present. An error from fn leaves the stored value unchanged.
func (t *trie[T]) Set(key string, fn func(ptr *T, existed bool) error) error {
	node := t
	for _, r := range key {
		if node.children == nil {
			node.children = make(map[rune]*trie[T])
		}
		ch, ok := node.children[r]
		if !ok {
			ch = &trie[T]{}
			node.children[r] = ch
		}
		node = ch
	}
	if err := fn(&node.value, node.set); err != nil {
		return err
	}
	node.set = true

	return nil
}

// LongestPrefix returns the value of the longest key that prefixes s and the
// key's length in bytes.
func (t *trie[T]) LongestPrefix(s string) (T, int, bool) {
	var (
		best  T
		width int
		found bool
	)
	node := t
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		ch, ok := node.children[r]
		if !ok {
			break
		}
		i += size
		node = ch
		if node.set {
			best, width, found = node.value, i, true
		}
	}

	return best, width, found
}
