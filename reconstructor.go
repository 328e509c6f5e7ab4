package trailnet

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultPairCap bounds endpoint pair enumeration within one complex
// component. 0 disables complex decomposition.
const DefaultPairCap = 10000

// Reconstructor converts raw element collections into trail records.
type Reconstructor struct {
	county            string
	pairCap           int
	simplifyTolerance float64
	workers           int
	logger            *zap.Logger
}

// NewReconstructor creates a reconstructor with default settings overridden
// by the given options.
func NewReconstructor(options ...func(*Reconstructor)) *Reconstructor {
	reconstructor := &Reconstructor{
		pairCap:           DefaultPairCap,
		simplifyTolerance: DefaultSimplifyTolerance,
		workers:           runtime.NumCPU(),
		logger:            zap.NewNop(),
	}
	for _, option := range options {
		option(reconstructor)
	}
	if reconstructor.workers < 1 {
		reconstructor.workers = 1
	}
	if reconstructor.pairCap < 0 {
		reconstructor.pairCap = 0
	}
	return reconstructor
}

// WithCounty scopes synthesized trail identifiers to a county name
func WithCounty(county string) func(*Reconstructor) {
	return func(reconstructor *Reconstructor) {
		reconstructor.county = county
	}
}

// WithPairCap overrides the endpoint pair enumeration cap
func WithPairCap(pairCap int) func(*Reconstructor) {
	return func(reconstructor *Reconstructor) {
		reconstructor.pairCap = pairCap
	}
}

// WithSimplifyTolerance overrides the geometry simplification tolerance (degrees)
func WithSimplifyTolerance(tolerance float64) func(*Reconstructor) {
	return func(reconstructor *Reconstructor) {
		reconstructor.simplifyTolerance = tolerance
	}
}

// WithWorkers sets how many components are decomposed concurrently
func WithWorkers(workers int) func(*Reconstructor) {
	return func(reconstructor *Reconstructor) {
		reconstructor.workers = workers
	}
}

// WithLogger injects a structured logger
func WithLogger(logger *zap.Logger) func(*Reconstructor) {
	return func(reconstructor *Reconstructor) {
		reconstructor.logger = logger
	}
}

// Stats summarizes one reconstruction run.
type Stats struct {
	Nodes      int
	Ways       int
	TrailWays  int
	GraphNodes int
	GraphEdges int
	Components int
}

// Result is the output of one reconstruction run: the ordered trail records
// plus every non-fatal warning collected along the way.
type Result struct {
	Trails   []*Trail
	Warnings []Warning
	Stats    Stats
}

// TrailPoint is one flattened coordinate row of a reconstructed trail, for
// downstream storage as parent/child rows.
type TrailPoint struct {
	TrailID  string
	Sequence int
	Lon      float64
	Lat      float64
}

// TrailPoints returns the flattened full-resolution point sequence of every
// trail, in trail order.
func (result *Result) TrailPoints() []TrailPoint {
	points := []TrailPoint{}
	for _, trail := range result.Trails {
		for i, pt := range trail.Coordinates {
			points = append(points, TrailPoint{
				TrailID:  trail.ID,
				Sequence: i,
				Lon:      pt.Lon(),
				Lat:      pt.Lat(),
			})
		}
	}
	return points
}

type componentOutput struct {
	subgraph *Graph
	paths    [][]osm.NodeID
	warnings []Warning
}

// Reconstruct runs the full pipeline: filter trail ways, build the graph,
// split it into connected components, decompose each component into paths
// and assemble trail records. Components are processed concurrently; their
// results are merged in component order so output is deterministic.
func (reconstructor *Reconstructor) Reconstruct(ctx context.Context, data *RawData) (*Result, error) {
	if data == nil {
		return nil, errors.New("no element collection given")
	}
	logger := reconstructor.logger

	warnings := append([]Warning{}, data.Warnings...)
	trailWays := FilterTrailWays(data.Ways)
	logger.Info("filtered trail ways",
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("ways", len(data.Ways)),
		zap.Int("trail_ways", len(trailWays)))

	graph := BuildGraph(data.Nodes, trailWays)
	warnings = append(warnings, graph.Warnings()...)
	components := graph.ConnectedComponents()
	logger.Info("built trail graph",
		zap.Int("graph_nodes", graph.NodeCount()),
		zap.Int("graph_edges", graph.EdgeCount()),
		zap.Int("components", len(components)))

	// Components share no mutable state once the graph is built, so they are
	// decomposed on a bounded worker pool and merged by index.
	outputs := make([]componentOutput, len(components))
	semaphore := make(chan struct{}, reconstructor.workers)
	var wg sync.WaitGroup
	for i, component := range components {
		wg.Add(1)
		go func(i int, component []osm.NodeID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			if ctx.Err() != nil {
				return
			}
			subgraph := graph.Subgraph(component)
			paths, componentWarnings := decomposeComponent(ctx, subgraph, reconstructor.pairCap, logger)
			outputs[i] = componentOutput{subgraph: subgraph, paths: paths, warnings: componentWarnings}
		}(i, component)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "reconstruction cancelled")
	}

	trails := []*Trail{}
	sequence := 0
	for i := range outputs {
		warnings = append(warnings, outputs[i].warnings...)
		for _, path := range outputs[i].paths {
			trail := assembleTrail(outputs[i].subgraph, path)
			if trail == nil {
				continue
			}
			sequence++
			trail.ID = reconstructor.trailID(sequence)
			trail.County = reconstructor.county
			trail.Name = trailName(trail.Tags, sequence)
			trail.Difficulty = estimateDifficulty(trail.Tags, trail.LengthMiles)
			trail.Geometry = simplifyLine(trail.Coordinates, reconstructor.simplifyTolerance)
			trails = append(trails, trail)
		}
	}
	logger.Info("reconstructed trails", zap.Int("trails", len(trails)), zap.Int("warnings", len(warnings)))

	return &Result{
		Trails:   trails,
		Warnings: warnings,
		Stats: Stats{
			Nodes:      len(data.Nodes),
			Ways:       len(data.Ways),
			TrailWays:  len(trailWays),
			GraphNodes: graph.NodeCount(),
			GraphEdges: graph.EdgeCount(),
			Components: len(components),
		},
	}, nil
}

func (reconstructor *Reconstructor) trailID(sequence int) string {
	if reconstructor.county == "" {
		return fmt.Sprintf("trail_%d", sequence)
	}
	return fmt.Sprintf("%s_%d", strings.ToLower(reconstructor.county), sequence)
}
