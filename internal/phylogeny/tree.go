package phylogeny

import "strings"

// RootLabel is the reserved label of the root node.
const RootLabel = "Root"

// NodeID is a stable handle into a Tree's node arena.
type NodeID int

// EdgeID is a stable handle into a Tree's edge arena.
type EdgeID int

// NoNode is returned by Root on an empty tree.
const NoNode NodeID = -1

type node struct {
	taxa    []string
	out     []EdgeID
	in      []EdgeID
	removed bool
}

type edge struct {
	from, to NodeID
	label    string
	removed  bool
}

// Tree is a rooted directed tree stored as arenas of nodes and edges
// addressed by integer handles. Handles stay valid after removals; removed
// entries are skipped by every accessor that enumerates.
//
// A Tree is only mutated inside this package while a pipeline runs.
type Tree struct {
	nodes []node
	edges []edge
	root  NodeID
}

// NodeView is a read-only snapshot of a node.
type NodeView struct {
	ID    NodeID
	Label string
	Taxa  []string
}

// EdgeView is a read-only snapshot of an edge.
type EdgeView struct {
	ID       EdgeID
	From, To NodeID
	Label    string
}

func newEmptyTree() *Tree { return &Tree{root: NoNode} }

func newRootedTree() *Tree {
	t := &Tree{}
	t.root = t.addNode()
	return t
}

func (t *Tree) addNode(taxa ...string) NodeID {
	t.nodes = append(t.nodes, node{taxa: append([]string(nil), taxa...)})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) addEdge(from, to NodeID, label string) EdgeID {
	id := EdgeID(len(t.edges))
	t.edges = append(t.edges, edge{from: from, to: to, label: label})
	t.nodes[from].out = append(t.nodes[from].out, id)
	t.nodes[to].in = append(t.nodes[to].in, id)
	return id
}

func (t *Tree) removeEdge(id EdgeID) {
	e := &t.edges[id]
	if e.removed {
		return
	}
	e.removed = true
	t.nodes[e.from].out = dropEdge(t.nodes[e.from].out, id)
	t.nodes[e.to].in = dropEdge(t.nodes[e.to].in, id)
}

func (t *Tree) removeNode(id NodeID) {
	n := &t.nodes[id]
	for _, e := range append(append([]EdgeID(nil), n.in...), n.out...) {
		t.removeEdge(e)
	}
	n.removed = true
	n.taxa = nil
}

func dropEdge(list []EdgeID, id EdgeID) []EdgeID {
	for i, e := range list {
		if e == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// findChild returns the target of the outgoing edge of from labeled label.
func (t *Tree) findChild(from NodeID, label string) (NodeID, bool) {
	for _, e := range t.nodes[from].out {
		if t.edges[e].label == label {
			return t.edges[e].to, true
		}
	}
	return NoNode, false
}

func (t *Tree) liveNodes() []NodeID {
	ids := make([]NodeID, 0, len(t.nodes))
	for i := range t.nodes {
		if !t.nodes[i].removed {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// Root returns the root handle, or NoNode for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	n := 0
	for i := range t.nodes {
		if !t.nodes[i].removed {
			n++
		}
	}
	return n
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.Len() == 0 }

// Label returns the node label: RootLabel for the root, otherwise the
// node's taxa joined by a space (empty when it carries none).
func (t *Tree) Label(id NodeID) string {
	if id == t.root {
		return RootLabel
	}
	return strings.Join(t.nodes[id].taxa, " ")
}

// Taxa returns a copy of the taxon identifiers attached to a node.
func (t *Tree) Taxa(id NodeID) []string {
	return append([]string(nil), t.nodes[id].taxa...)
}

// Nodes enumerates live nodes in handle order.
func (t *Tree) Nodes() []NodeView {
	ids := t.liveNodes()
	out := make([]NodeView, len(ids))
	for i, id := range ids {
		out[i] = NodeView{ID: id, Label: t.Label(id), Taxa: t.Taxa(id)}
	}
	return out
}

// Edges enumerates live edges in handle order.
func (t *Tree) Edges() []EdgeView {
	var out []EdgeView
	for i, e := range t.edges {
		if !e.removed {
			out = append(out, EdgeView{ID: EdgeID(i), From: e.from, To: e.to, Label: e.label})
		}
	}
	return out
}

// Children returns the targets of a node's outgoing edges in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	out := make([]NodeID, 0, len(t.nodes[id].out))
	for _, e := range t.nodes[id].out {
		out = append(out, t.edges[e].to)
	}
	return out
}

// Parent returns the source of the node's incoming edge and its label.
// ok is false for the root.
func (t *Tree) Parent(id NodeID) (parent NodeID, label string, ok bool) {
	in := t.nodes[id].in
	if len(in) == 0 {
		return NoNode, "", false
	}
	e := t.edges[in[0]]
	return e.from, e.label, true
}

// InDegree returns the number of incoming edges.
func (t *Tree) InDegree(id NodeID) int { return len(t.nodes[id].in) }

// OutDegree returns the number of outgoing edges.
func (t *Tree) OutDegree(id NodeID) int { return len(t.nodes[id].out) }

// Leaves returns every live node without outgoing edges, root excluded.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	for _, id := range t.liveNodes() {
		if id != t.root && len(t.nodes[id].out) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// PathCharacters returns the character identifiers acquired on the way from
// the root to id, splitting compacted chains and skipping unlabeled edges.
func (t *Tree) PathCharacters(id NodeID) []string {
	var rev []string
	for cur := id; ; {
		parent, label, ok := t.Parent(cur)
		if !ok {
			break
		}
		if label != "" {
			parts := strings.Split(label, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				rev = append(rev, parts[i])
			}
		}
		cur = parent
	}
	if len(rev) == 0 {
		return nil
	}
	out := make([]string, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}

// Clone returns a deep copy of the tree, handles included.
func (t *Tree) Clone() *Tree {
	c := &Tree{root: t.root, nodes: make([]node, len(t.nodes)), edges: append([]edge(nil), t.edges...)}
	for i, n := range t.nodes {
		c.nodes[i] = node{
			taxa:    append([]string(nil), n.taxa...),
			out:     append([]EdgeID(nil), n.out...),
			in:      append([]EdgeID(nil), n.in...),
			removed: n.removed,
		}
	}
	return c
}
