package kotori

import (
	"errors"
	"fmt"
	"strings"
)

const rootSegment = "/"

// node is one fragment of a compressed prefix trie. The concatenation of
// segments from the root down to a node is the key the node stands for.
//
// No two children of a node start with the same byte; lookup picks a child
// by first byte alone.
type node struct {
	segment  string
	handler  Handler
	children []*node
}

func newRoot() *node {
	return &node{segment: rootSegment}
}

// insert stores h under key. The receiver's segment must share at least its
// first byte with key, which always holds for the root.
func (n *node) insert(key string, h Handler) error {
	if key == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	return n.insertSuffix(withLeadingSlash(key), key, h)
}

func (n *node) insertSuffix(suffix, key string, h Handler) error {
	k := longestCommonPrefix(n.segment, suffix)
	switch {
	case k == 0:
		return fmt.Errorf("insert %q: segment %q shares no prefix", key, n.segment)

	case k == len(n.segment) && k == len(suffix):
		if n.handler != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}
		n.handler = h
		return nil

	case k == len(suffix):
		// The new key ends inside this segment.
		n.demote(k)
		n.handler = h
		return nil

	case k == len(n.segment):
		rest := suffix[k:]
		if child := n.childFor(rest[0]); child != nil {
			return child.insertSuffix(rest, key, h)
		}
		n.children = append(n.children, &node{segment: rest, handler: h})
		return nil

	default:
		// Split into a branch point.
		n.demote(k)
		n.handler = nil
		n.children = append(n.children, &node{segment: suffix[k:], handler: h})
		return nil
	}
}

// demote moves segment[k:], the handler and the children of n into a single
// new child, leaving n with segment[:k].
func (n *node) demote(k int) {
	child := &node{
		segment:  n.segment[k:],
		handler:  n.handler,
		children: n.children,
	}
	n.segment = n.segment[:k]
	n.handler = nil
	n.children = []*node{child}
}

func (n *node) childFor(first byte) *node {
	for _, child := range n.children {
		if child.segment[0] == first {
			return child
		}
	}
	return nil
}

// lookup returns the node whose full key equals key, or nil. The returned
// node may be a branch point without a handler.
func (n *node) lookup(key string) *node {
	if key == "" {
		return nil
	}
	rest := withLeadingSlash(key)
	cur := n
	for cur != nil {
		k := longestCommonPrefix(cur.segment, rest)
		if k < len(cur.segment) {
			return nil
		}
		rest = rest[k:]
		if rest == "" {
			return cur
		}
		cur = cur.childFor(rest[0])
	}
	return nil
}

// walk calls fn for every node carrying a handler, in child order, with the
// node's full key.
func (n *node) walk(prefix string, fn func(key string, nd *node)) {
	key := prefix + n.segment
	if n.handler != nil {
		fn(key, n)
	}
	for _, child := range n.children {
		child.walk(key, fn)
	}
}

var errSiblingConflict = errors.New("sibling conflict")

// validate checks the structural invariants of the subtree rooted at n:
// non-empty segments and unique first bytes among siblings.
func (n *node) validate() error {
	if n.segment == "" {
		return errors.New("empty segment")
	}
	var seen [256]bool
	for _, child := range n.children {
		if child.segment == "" {
			return fmt.Errorf("empty segment under %q", n.segment)
		}
		first := child.segment[0]
		if seen[first] {
			return fmt.Errorf("%w: children of %q share first byte %q", errSiblingConflict, n.segment, first)
		}
		seen[first] = true
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) dump(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString(n.segment)
	if n.handler != nil {
		b.WriteString(" *")
	}
	b.WriteByte('\n')
	for _, child := range n.children {
		child.dump(b, indent+"\t")
	}
}

func withLeadingSlash(key string) string {
	if key[0] == '/' {
		return key
	}
	return "/" + key
}

func longestCommonPrefix(a, b string) int {
	n := min(len(b), len(a))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
