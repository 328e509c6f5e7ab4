package trailnet

import (
	"sort"

	"github.com/paulmach/osm"
)

// ConnectedComponents returns the maximal sets of mutually reachable node
// identities. Every node appears in exactly one component. Components are
// sorted ascending internally and ordered by their smallest node identity,
// so iteration order is deterministic.
func (g *Graph) ConnectedComponents() [][]osm.NodeID {
	visited := make(map[osm.NodeID]struct{}, len(g.nodes))
	components := [][]osm.NodeID{}
	for _, start := range g.NodeIDs() {
		if _, ok := visited[start]; ok {
			continue
		}
		visited[start] = struct{}{}
		component := []osm.NodeID{}
		queue := []osm.NodeID{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)
			for _, neighbor := range g.Neighbors(current) {
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}
	return components
}

// Endpoints returns node identities with exactly one incident edge, ascending
func (g *Graph) Endpoints() []osm.NodeID {
	endpoints := []osm.NodeID{}
	for _, id := range g.NodeIDs() {
		if g.Degree(id) == 1 {
			endpoints = append(endpoints, id)
		}
	}
	return endpoints
}

// Junctions returns node identities with more than two incident edges, ascending
func (g *Graph) Junctions() []osm.NodeID {
	junctions := []osm.NodeID{}
	for _, id := range g.NodeIDs() {
		if g.Degree(id) > 2 {
			junctions = append(junctions, id)
		}
	}
	return junctions
}
