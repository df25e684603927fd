// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sort"
	"strings"
)

type trieNode struct {
	children map[rune]*trieNode
	ids      []int // catalog positions of keys ending here, ascending
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a case-insensitive prefix tree mapping keys to integer IDs. Several
// IDs may share a key. A Trie is built once with Insert and then only read;
// concurrent reads are safe once building is complete.
type Trie struct {
	root *trieNode
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert associates id with key. IDs should be inserted in ascending order.
func (t *Trie) Insert(key string, id int) {
	if key == "" {
		return
	}
	node := t.root
	for _, ch := range strings.ToLower(key) {
		child := node.children[ch]
		if child == nil {
			child = newTrieNode()
			node.children[ch] = child
		}
		node = child
	}
	node.ids = append(node.ids, id)
}

// PrefixIDs returns up to limit IDs whose key starts with prefix, in
// ascending ID order. A non-positive limit returns all matches.
func (t *Trie) PrefixIDs(prefix string, limit int) []int {
	node := t.find(prefix)
	if node == nil {
		return nil
	}

	var ids []int
	collect(node, &ids)
	sort.Ints(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

func (t *Trie) find(key string) *trieNode {
	node := t.root
	for _, ch := range strings.ToLower(key) {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect(node *trieNode, ids *[]int) {
	*ids = append(*ids, node.ids...)
	for _, child := range node.children {
		collect(child, ids)
	}
}
