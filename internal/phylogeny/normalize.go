package phylogeny

// normalize splits taxon labels into leaves and compacts the tree.
// It returns the number of nodes spliced out by compaction.
func normalize(t *Tree, internal bool) int {
	splitLabels(t, internal, func(n *node) bool { return len(n.out) > 0 })
	splitLabels(t, internal, func(n *node) bool { return len(n.out) == 0 && len(n.taxa) > 1 })
	return compact(t)
}

// splitLabels gives every selected non-root node carrying taxa one leaf per
// taxon, attached through an unlabeled edge. The node keeps its own label
// only when internal is set. Only nodes existing on entry are visited.
func splitLabels(t *Tree, internal bool, selected func(*node) bool) {
	for _, id := range t.liveNodes() {
		if id == t.root {
			continue
		}
		n := &t.nodes[id]
		if len(n.taxa) == 0 || !selected(n) {
			continue
		}
		taxa := n.taxa
		if !internal {
			n.taxa = nil
		}
		for _, taxon := range taxa {
			leaf := t.addNode(taxon)
			t.addEdge(id, leaf, "")
		}
	}
}

// compact splices out unlabeled nodes with exactly one incoming and one
// outgoing edge, joining the two edge labels with a comma, until none is
// left. It returns the number of nodes removed.
func compact(t *Tree) int {
	removed := 0
	for changed := true; changed; {
		changed = false
		for _, id := range t.liveNodes() {
			if !spliceable(t, id) {
				continue
			}
			n := t.nodes[id]
			in, out := t.edges[n.in[0]], t.edges[n.out[0]]
			t.addEdge(in.from, out.to, joinLabels(in.label, out.label))
			t.removeNode(id)
			removed++
			changed = true
		}
	}
	return removed
}

func spliceable(t *Tree, id NodeID) bool {
	if id == t.root {
		return false
	}
	n := t.nodes[id]
	return !n.removed && len(n.taxa) == 0 && len(n.in) == 1 && len(n.out) == 1
}

func joinLabels(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "," + b
}
