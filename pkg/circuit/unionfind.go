package circuit

// unionFind tracks net membership for connectivity queries using
// union-by-rank with path compression.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

func (uf *unionFind) add(key string) {
	if _, ok := uf.parent[key]; !ok {
		uf.parent[key] = key
		uf.rank[key] = 0
	}
}

func (uf *unionFind) find(key string) string {
	root := key
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// Path compression: point everything on the walk directly at the root.
	current := key
	for current != root {
		next := uf.parent[current]
		uf.parent[current] = root
		current = next
	}
	return root
}

func (uf *unionFind) union(a, b string) {
	uf.add(a)
	uf.add(b)
	rootA := uf.find(a)
	rootB := uf.find(b)
	if rootA == rootB {
		return
	}

	if uf.rank[rootA] < uf.rank[rootB] {
		uf.parent[rootA] = rootB
	} else if uf.rank[rootA] > uf.rank[rootB] {
		uf.parent[rootB] = rootA
	} else {
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
}
