package navtree

import (
	"strconv"
	"strings"
)

// NodePath locates a node inside a sidebar: the sidebar name followed by the
// index of the node in each enclosing item list.
type NodePath struct {
	Sidebar string
	Indexes []int
}

// Child returns the path of the i-th item below p.
func (p NodePath) Child(i int) NodePath {
	idx := make([]int, len(p.Indexes), len(p.Indexes)+1)
	copy(idx, p.Indexes)
	return NodePath{Sidebar: p.Sidebar, Indexes: append(idx, i)}
}

// Depth returns the nesting level; root entries have depth 1.
func (p NodePath) Depth() int { return len(p.Indexes) }

// String renders the path as docs[1].items[0].
func (p NodePath) String() string {
	var b strings.Builder
	b.WriteString(p.Sidebar)
	for i, idx := range p.Indexes {
		if i > 0 {
			b.WriteString(".items")
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(idx))
		b.WriteByte(']')
	}
	return b.String()
}
