package phylogeny

// buildTree synthesizes the raw tree for a laminar matrix. Every row walks
// from the root along order, following or creating one edge per present
// character, and the taxon is attached where the walk stops. Taxa that stop
// at the root get their own leaf so the root label stays reserved.
func buildTree(m Matrix, order Order) *Tree {
	t := newRootedTree()
	for i, row := range m {
		cur := t.root
		for _, j := range order {
			if row[j] != Present {
				continue
			}
			label := CharacterID(j)
			next, ok := t.findChild(cur, label)
			if !ok {
				next = t.addNode()
				t.addEdge(cur, next, label)
			}
			cur = next
		}

		taxon := TaxonID(i)
		if cur == t.root {
			leaf := t.addNode(taxon)
			t.addEdge(t.root, leaf, "")
			continue
		}
		t.nodes[cur].taxa = append(t.nodes[cur].taxa, taxon)
	}
	return t
}
