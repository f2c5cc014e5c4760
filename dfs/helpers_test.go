package dfs_test

import "sort"

// adj is a minimal Digraph backed by an adjacency map.
type adj map[string][]string

func (a adj) Vertices() []string {
	seen := map[string]bool{}
	for u, vs := range a {
		seen[u] = true
		for _, v := range vs {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

func (a adj) Successors(id string) []string { return append([]string(nil), a[id]...) }

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}
