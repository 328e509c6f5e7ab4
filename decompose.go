package trailnet

import (
	"context"
	"fmt"

	"github.com/LdDl/ch"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// pathRouter answers weighted shortest-path queries over one connected
// component. The underlying graph is contracted once and then queried per
// endpoint pair.
type pathRouter struct {
	graph ch.Graph
}

// newPathRouter builds the routing graph for a component snapshot. Vertices
// and edges are inserted in ascending identity order so tie-breaking between
// equal-weight paths is deterministic across runs.
func newPathRouter(component *Graph) (*pathRouter, error) {
	router := &pathRouter{}
	ids := component.NodeIDs()
	for _, id := range ids {
		if err := router.graph.CreateVertex(int64(id)); err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex %d", id)
		}
	}
	for _, u := range ids {
		for _, v := range component.Neighbors(u) {
			// Ordered adjacency visits every edge twice, once per direction
			edge := component.EdgeBetween(u, v)
			if err := router.graph.AddEdge(int64(u), int64(v), edge.DistanceMiles); err != nil {
				return nil, errors.Wrapf(err, "Can't add edge %d-%d", u, v)
			}
		}
	}
	router.graph.PrepareContractionHierarchies()
	return router, nil
}

// shortestPath returns the minimal-weight node sequence between two vertices
// and its cost. A nil path means the target is unreachable.
func (router *pathRouter) shortestPath(source, target osm.NodeID) ([]osm.NodeID, float64) {
	cost, rawPath := router.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(rawPath) < 2 {
		return nil, 0
	}
	path := make([]osm.NodeID, len(rawPath))
	for i, vertex := range rawPath {
		path[i] = osm.NodeID(vertex)
	}
	return path, cost
}

// decomposeComponent converts a single connected component into zero or more
// trail paths:
//
//   - fewer than 2 edges: nothing to reconstruct;
//   - exactly 2 endpoints: one path, the shortest route between them;
//   - otherwise: one path candidate per unordered endpoint pair, enumerated
//     in ascending identity order and capped at pairCap attempts.
//
// A component with no endpoints at all (a pure cycle) falls into the last
// case with zero pairs and produces zero paths. Every enumerated pair counts
// against the cap whether or not a route is found; pairCap <= 0 disables
// complex decomposition entirely.
func decomposeComponent(ctx context.Context, component *Graph, pairCap int, logger *zap.Logger) ([][]osm.NodeID, []Warning) {
	warnings := []Warning{}
	if component.EdgeCount() < 2 {
		logger.Debug("skipping trivial component",
			zap.Int("nodes", component.NodeCount()),
			zap.Int("edges", component.EdgeCount()))
		return nil, nil
	}

	endpoints := component.Endpoints()
	router, err := newPathRouter(component)
	if err != nil {
		// Router construction over a valid snapshot can only fail on
		// duplicate inserts, which ordered iteration rules out; treat it as
		// a skipped component rather than aborting the run.
		warnings = append(warnings, Warning{
			Kind:    WARN_NO_PATH_FOUND,
			Message: fmt.Sprintf("component routing failed: %s", err),
		})
		return nil, warnings
	}

	if len(endpoints) == 2 {
		logger.Debug("simple component with 2 endpoints, finding path")
		path, _ := router.shortestPath(endpoints[0], endpoints[1])
		if path == nil {
			warnings = append(warnings, Warning{
				Kind:    WARN_NO_PATH_FOUND,
				Message: fmt.Sprintf("no path between endpoints %d and %d", endpoints[0], endpoints[1]),
			})
			return nil, warnings
		}
		return [][]osm.NodeID{path}, warnings
	}

	totalPairs := len(endpoints) * (len(endpoints) - 1) / 2
	if totalPairs == 0 {
		if len(endpoints) == 0 {
			warnings = append(warnings, Warning{
				Kind:    WARN_TRIVIAL_COMPONENT,
				Message: fmt.Sprintf("cycle component with %d nodes has no endpoints, no trails produced", component.NodeCount()),
			})
		}
		return nil, warnings
	}
	logger.Debug("complex component",
		zap.Int("endpoints", len(endpoints)),
		zap.Int("pairs", totalPairs))

	paths := [][]osm.NodeID{}
	attempted := 0
	capped := pairCap < totalPairs
enumeration:
	for i := 0; i < len(endpoints); i++ {
		for j := i + 1; j < len(endpoints); j++ {
			if attempted >= pairCap {
				break enumeration
			}
			if err := ctx.Err(); err != nil {
				break enumeration
			}
			attempted++
			if attempted%100 == 0 {
				logger.Debug("processing endpoint pairs",
					zap.Int("attempted", attempted),
					zap.Int("total", totalPairs))
			}
			path, _ := router.shortestPath(endpoints[i], endpoints[j])
			if path == nil {
				warnings = append(warnings, Warning{
					Kind:    WARN_NO_PATH_FOUND,
					Message: fmt.Sprintf("no path between endpoints %d and %d", endpoints[i], endpoints[j]),
				})
				continue
			}
			paths = append(paths, path)
		}
	}
	if capped {
		warnings = append(warnings, Warning{
			Kind:      WARN_ENUMERATION_CAPPED,
			Message:   fmt.Sprintf("endpoint pair enumeration capped: processed %d of %d pairs", attempted, totalPairs),
			Processed: attempted,
			Total:     totalPairs,
		})
	}
	return paths, warnings
}
