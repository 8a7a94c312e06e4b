// Package index provides the in-memory prefix trie that answers
// "all records whose code starts with X" queries. A trie is built once
// per ingestion and is read-only afterwards; a re-ingestion produces a
// brand-new trie rather than mutating the published one.
package index

import (
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

// node is a single trie node. The path from the root to a node spells
// a code prefix; records lists exactly the records whose full code
// equals that path, in insertion order.
type node struct {
	children map[byte]*node
	records  []domain.Record
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie indexes records by the successive bytes of their code. The code
// alphabet is ASCII digits, so byte-wise walking is exact.
type Trie struct {
	root *node
	size int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds a record under the given code. Inserting with an empty
// code is a no-op. Duplicate codes accumulate: no uniqueness is
// enforced, repeated inserts of the same code keep every record.
func (t *Trie) Insert(code string, rec domain.Record) {
	if code == "" {
		return
	}

	cur := t.root
	for i := 0; i < len(code); i++ {
		c := code[i]
		next, ok := cur.children[c]
		if !ok {
			next = newNode()
			cur.children[c] = next
		}
		cur = next
	}
	cur.records = append(cur.records, rec)
	t.size++
}

// Search returns every record whose code starts with prefix: the
// records terminating at the prefix node plus all records in its
// subtree. An empty prefix returns no results, and so does a prefix
// with no matching branch. No ordering beyond "all descendants
// included" is promised; consumers impose their own.
func (t *Trie) Search(prefix string) []domain.Record {
	if prefix == "" {
		return nil
	}

	cur := t.root
	for i := 0; i < len(prefix); i++ {
		next, ok := cur.children[prefix[i]]
		if !ok {
			return nil
		}
		cur = next
	}

	var out []domain.Record
	cur.collect(&out)
	return out
}

// Len returns the number of records in the trie.
func (t *Trie) Len() int {
	return t.size
}

// collect appends this node's records and every descendant's records.
// Recursion depth is bounded by the maximum code length.
func (n *node) collect(out *[]domain.Record) {
	*out = append(*out, n.records...)
	// Walk digit children in order so repeat searches are stable.
	for c := byte('0'); c <= '9'; c++ {
		if child, ok := n.children[c]; ok {
			child.collect(out)
		}
	}
	// Codes are validated as all-digit before insertion, but Insert
	// itself accepts any bytes; cover stray non-digit edges too.
	for c, child := range n.children {
		if c < '0' || c > '9' {
			child.collect(out)
		}
	}
}
