// Package config loads the global urls.toml file: a tree of named groups
// whose leaves map URL names to URLs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"earl/internal/model"
)

var (
	// ErrNotFound is returned when the urls file does not exist.
	ErrNotFound = errors.New("urls file not found")
	// ErrParse is returned when the urls file is not valid TOML.
	ErrParse = errors.New("invalid urls file")
)

// Node is either a leaf group holding links or a group of child nodes.
// The kind is fixed when the tree is built.
type Node struct {
	leaf     bool
	links    model.Links
	children map[string]*Node
}

// IsLeaf reports whether n holds links rather than child groups.
func (n *Node) IsLeaf() bool { return n.leaf }

// Links returns a copy of the links of a leaf node.
func (n *Node) Links() model.Links {
	return append(model.Links(nil), n.links...)
}

// Child returns the named child of a group node.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Tree is a loaded urls file.
type Tree struct {
	root     *Node
	warnings []string
}

// Load reads and parses the urls file at path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse builds a Tree from TOML source.
func Parse(data []byte) (*Tree, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	b := builder{order: keyOrder(md)}
	root := b.group(nil, raw)
	return &Tree{root: root, warnings: b.warnings}, nil
}

// Warnings lists values that were ignored while building the tree.
func (t *Tree) Warnings() []string { return t.warnings }

// Groups returns the dotted path of every leaf group, sorted.
func (t *Tree) Groups() []string {
	var out []string
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		for name, child := range n.children {
			full := name
			if prefix != "" {
				full = prefix + "." + name
			}
			if child.IsLeaf() {
				if len(child.links) > 0 {
					out = append(out, full)
				}
				continue
			}
			walk(full, child)
		}
	}
	walk("", t.root)
	sort.Strings(out)
	return out
}

// Resolve returns the links of the leaf group at the dotted path. A
// missing segment or a path that ends on a non-leaf group gives an empty
// result, not an error.
func (t *Tree) Resolve(path string) model.Links {
	n := t.root
	for _, key := range strings.Split(path, ".") {
		child, ok := n.Child(key)
		if !ok {
			return nil
		}
		n = child
	}
	if !n.IsLeaf() {
		return nil
	}
	return n.Links()
}

const keySep = "\x1f"

// keyOrder records the position at which each key appears in the source
// so leaf links keep file order.
func keyOrder(md toml.MetaData) map[string]int {
	keys := md.Keys()
	order := make(map[string]int, len(keys))
	for i, k := range keys {
		joined := strings.Join(k, keySep)
		if _, seen := order[joined]; !seen {
			order[joined] = i
		}
	}
	return order
}

type builder struct {
	order    map[string]int
	warnings []string
}

func (b *builder) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// sortedKeys orders the keys of the table at path by file position.
func (b *builder) sortedKeys(path []string, table map[string]any) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	pos := func(k string) int {
		full := append(append([]string(nil), path...), k)
		if p, ok := b.order[strings.Join(full, keySep)]; ok {
			return p
		}
		return len(b.order)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		pi, pj := pos(keys[i]), pos(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// node decides once whether table is a leaf (every value a string) or a
// group. An empty table is an empty leaf, which Groups does not list.
func (b *builder) node(path []string, table map[string]any) *Node {
	nested := false
	for _, v := range table {
		if _, ok := v.(string); !ok {
			nested = true
			break
		}
	}
	if nested {
		return b.group(path, table)
	}

	keys := b.sortedKeys(path, table)
	links := make(model.Links, 0, len(keys))
	for _, k := range keys {
		links = append(links, model.Link{Name: k, URL: table[k].(string)})
	}
	return &Node{leaf: true, links: links}
}

func (b *builder) group(path []string, table map[string]any) *Node {
	n := &Node{children: make(map[string]*Node)}
	where := strings.Join(path, ".")
	if where == "" {
		where = "top level"
	}
	hasTables := false
	for _, v := range table {
		if _, ok := v.(map[string]any); ok {
			hasTables = true
			break
		}
	}
	for _, k := range b.sortedKeys(path, table) {
		child := append(append([]string(nil), path...), k)
		switch v := table[k].(type) {
		case map[string]any:
			n.children[k] = b.node(child, v)
		case string:
			if hasTables {
				b.warnf("%s: URL %q is mixed with nested groups and was ignored", where, k)
			} else {
				b.warnf("%s: URL %q is in a table with a non-string value and was ignored", where, k)
			}
		default:
			b.warnf("%s: %q has non-string value of type %T and was ignored", where, k, v)
		}
	}
	return n
}
