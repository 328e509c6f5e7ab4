package trailnet

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Edge connects two path-adjacent way nodes. Provenance (way id) and weight
// are struct fields, not tag entries, so tag-conflict resolution never sees
// them.
type Edge struct {
	WayID         osm.WayID
	DistanceMiles float64
	Tags          osm.Tags
}

// Graph is an undirected simple graph over trail way nodes. It is built once
// per reconstruction run and treated as read-only afterwards; connected
// components operate on induced subgraph snapshots.
type Graph struct {
	nodes    map[osm.NodeID]orb.Point
	adj      map[osm.NodeID]map[osm.NodeID]*Edge
	numEdges int
	warnings []Warning
}

func newGraph() *Graph {
	return &Graph{
		nodes: make(map[osm.NodeID]orb.Point),
		adj:   make(map[osm.NodeID]map[osm.NodeID]*Edge),
	}
}

// BuildGraph constructs the weighted undirected trail graph. For every way
// with at least two node references an edge is added between each pair of
// consecutive references. Edges whose endpoint is absent from the node set
// are skipped with a warning; such dangling identities never enter the node
// set. When several ways cover the same node pair the way latest in input
// order wins the edge tags.
func BuildGraph(nodes map[osm.NodeID]*Node, ways []*WayData) *Graph {
	g := newGraph()
	for _, way := range ways {
		if len(way.Nodes) < 2 {
			continue
		}
		for i := 0; i < len(way.Nodes)-1; i++ {
			u := way.Nodes[i]
			v := way.Nodes[i+1]
			nodeU, ok := nodes[u]
			if !ok {
				g.warnDangling(way.ID, u)
				continue
			}
			nodeV, ok := nodes[v]
			if !ok {
				g.warnDangling(way.ID, v)
				continue
			}
			if u == v {
				// Zero-length self reference, nothing to connect
				continue
			}
			g.addNode(u, nodeU.Geom)
			g.addNode(v, nodeV.Geom)
			g.addEdge(u, v, &Edge{
				WayID:         way.ID,
				DistanceMiles: haversineMiles(nodeU.Geom, nodeV.Geom),
				Tags:          way.Tags,
			})
		}
	}
	return g
}

func (g *Graph) warnDangling(wayID osm.WayID, nodeID osm.NodeID) {
	g.warnings = append(g.warnings, Warning{
		Kind:    WARN_DANGLING_REFERENCE,
		Message: fmt.Sprintf("way %d references missing node %d", wayID, nodeID),
	})
}

func (g *Graph) addNode(id osm.NodeID, geom orb.Point) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = geom
	g.adj[id] = make(map[osm.NodeID]*Edge)
}

func (g *Graph) addEdge(u, v osm.NodeID, edge *Edge) {
	if _, ok := g.adj[u][v]; !ok {
		g.numEdges++
	}
	g.adj[u][v] = edge
	g.adj[v][u] = edge
}

// NodeCount returns number of nodes in the graph
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns number of undirected edges in the graph
func (g *Graph) EdgeCount() int {
	return g.numEdges
}

// Point returns the coordinate of given node
func (g *Graph) Point(id osm.NodeID) (orb.Point, bool) {
	pt, ok := g.nodes[id]
	return pt, ok
}

// Degree returns number of edges incident to given node
func (g *Graph) Degree(id osm.NodeID) int {
	return len(g.adj[id])
}

// Neighbors returns adjacent node identities in ascending order
func (g *Graph) Neighbors(id osm.NodeID) []osm.NodeID {
	neighbors := make([]osm.NodeID, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		neighbors = append(neighbors, nb)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// EdgeBetween returns the edge connecting two nodes, nil if none exists
func (g *Graph) EdgeBetween(u, v osm.NodeID) *Edge {
	return g.adj[u][v]
}

// NodeIDs returns all node identities in ascending order
func (g *Graph) NodeIDs() []osm.NodeID {
	ids := make([]osm.NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Warnings returns warnings recorded during construction
func (g *Graph) Warnings() []Warning {
	return g.warnings
}

// Subgraph returns the induced subgraph over the given node identities as an
// independent snapshot sharing no mutable state with the receiver.
func (g *Graph) Subgraph(ids []osm.NodeID) *Graph {
	sub := newGraph()
	members := make(map[osm.NodeID]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	for _, id := range ids {
		pt, ok := g.nodes[id]
		if !ok {
			continue
		}
		sub.addNode(id, pt)
	}
	for _, u := range ids {
		for v, edge := range g.adj[u] {
			if _, ok := members[v]; !ok {
				continue
			}
			if u < v {
				sub.addEdge(u, v, edge)
			}
		}
	}
	return sub
}
