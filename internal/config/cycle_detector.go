package config

import "sort"

// detectCycle returns the components participating in an extends cycle, or nil if no cycle exists.
func detectCycle(components []Component) []string {
	graph := make(map[string][]string, len(components))
	for _, comp := range components {
		if comp.Extends == "" {
			graph[comp.ID] = nil
			continue
		}
		graph[comp.ID] = []string{comp.Extends}
	}

	visiting := make(map[string]bool, len(components))
	visited := make(map[string]bool, len(components))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, dep := range graph[node] {
			if !visited[dep] {
				if visiting[dep] {
					idx := indexOf(stack, dep)
					if idx >= 0 {
						cycle = append([]string{}, stack[idx:]...)
						cycle = append(cycle, dep)
					}
					return true
				}
				if dfs(dep) {
					return true
				}
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if visited[id] {
			continue
		}
		if dfs(id) {
			break
		}
	}

	return cycle
}

// BuildOrder returns component ids ordered so every component follows the one it extends.
// Components without an ancestor keep their document order. The catalog must be acyclic.
func BuildOrder(components []Component) []string {
	byID := ComponentMap(components)
	placed := make(map[string]bool, len(components))
	order := make([]string, 0, len(components))

	var place func(id string, depth int)
	place = func(id string, depth int) {
		if placed[id] || depth > len(components) {
			return
		}
		comp, ok := byID[id]
		if !ok {
			return
		}
		if comp.Extends != "" {
			place(comp.Extends, depth+1)
		}
		placed[id] = true
		order = append(order, id)
	}

	for _, comp := range components {
		place(comp.ID, 0)
	}
	return order
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
