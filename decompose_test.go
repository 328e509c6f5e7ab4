package trailnet

import (
	"context"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decompose(t *testing.T, g *Graph, pairCap int) ([][]osm.NodeID, []Warning) {
	t.Helper()
	return decomposeComponent(context.Background(), g, pairCap, zap.NewNop())
}

func TestDecomposeSimpleChain(t *testing.T) {
	g := BuildGraph(chainNodes(5), []*WayData{testWay(10, nil, 1, 2, 3, 4, 5)})

	paths, warnings := decompose(t, g, DefaultPairCap)
	require.Len(t, paths, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, []osm.NodeID{1, 2, 3, 4, 5}, paths[0])
}

func TestDecomposeTrivialComponent(t *testing.T) {
	// A single edge is below the two-edge minimum
	g := BuildGraph(chainNodes(2), []*WayData{testWay(10, nil, 1, 2)})

	paths, warnings := decompose(t, g, DefaultPairCap)
	assert.Empty(t, paths)
	assert.Empty(t, warnings)
}

func TestDecomposeYShape(t *testing.T) {
	g := yGraph()

	paths, warnings := decompose(t, g, DefaultPairCap)
	require.Len(t, paths, 3)
	assert.Empty(t, warnings)

	// Pairs enumerate sorted endpoints (4,6), (4,8), (6,8); every path runs
	// through the junction
	assert.Equal(t, []osm.NodeID{4, 3, 1, 5, 6}, paths[0])
	assert.Equal(t, []osm.NodeID{4, 3, 1, 7, 8}, paths[1])
	assert.Equal(t, []osm.NodeID{6, 5, 1, 7, 8}, paths[2])
}

// starGraph builds one central node with `leaves` single-edge spokes.
func starGraph(leaves int) *Graph {
	nodes := map[osm.NodeID]*Node{1: testNode(1, 0, 0)}
	ways := []*WayData{}
	for i := 0; i < leaves; i++ {
		id := int64(i + 2)
		nodes[osm.NodeID(id)] = testNode(id, float64(i+1)*oneMileLatDegrees, 0)
		ways = append(ways, testWay(100+id, nil, 1, id))
	}
	return BuildGraph(nodes, ways)
}

func TestDecomposeCapEnforcement(t *testing.T) {
	// 6 endpoints -> 15 possible pairs
	g := starGraph(6)

	paths, warnings := decompose(t, g, 10)
	assert.Len(t, paths, 10)
	require.Len(t, warnings, 1)
	assert.Equal(t, WARN_ENUMERATION_CAPPED, warnings[0].Kind)
	assert.Equal(t, 10, warnings[0].Processed)
	assert.Equal(t, 15, warnings[0].Total)
}

func TestDecomposeCapZeroDisablesComplex(t *testing.T) {
	g := starGraph(4)

	paths, warnings := decompose(t, g, 0)
	assert.Empty(t, paths)
	require.Len(t, warnings, 1)
	assert.Equal(t, WARN_ENUMERATION_CAPPED, warnings[0].Kind)
	assert.Zero(t, warnings[0].Processed)
	assert.Equal(t, 6, warnings[0].Total)
}

func TestDecomposeCapZeroLeavesSimpleComponentsAlone(t *testing.T) {
	g := BuildGraph(chainNodes(3), []*WayData{testWay(10, nil, 1, 2, 3)})

	paths, warnings := decompose(t, g, 0)
	assert.Len(t, paths, 1)
	assert.Empty(t, warnings)
}

func TestDecomposePureCycle(t *testing.T) {
	nodes := map[osm.NodeID]*Node{
		1: testNode(1, 0, 0),
		2: testNode(2, oneMileLatDegrees, 0),
		3: testNode(3, 0, oneMileLatDegrees),
	}
	g := BuildGraph(nodes, []*WayData{testWay(10, nil, 1, 2, 3, 1)})

	paths, warnings := decompose(t, g, DefaultPairCap)
	assert.Empty(t, paths)
	require.Len(t, warnings, 1)
	assert.Equal(t, WARN_TRIVIAL_COMPONENT, warnings[0].Kind)
}

func TestDecomposePicksShorterRoute(t *testing.T) {
	// Two endpoints joined both by a short chain and a long detour; the
	// emitted path must follow the lower total weight.
	nodes := map[osm.NodeID]*Node{
		1: testNode(1, 0, 0),
		2: testNode(2, 0, oneMileLatDegrees),
		3: testNode(3, 0, 2*oneMileLatDegrees),
		4: testNode(4, 0, 3*oneMileLatDegrees),
		5: testNode(5, 5*oneMileLatDegrees, oneMileLatDegrees),
		6: testNode(6, 0, -oneMileLatDegrees),
	}
	ways := []*WayData{
		testWay(10, nil, 1, 2, 3, 4),
		// Detour between 2 and 3 via a far-away node
		testWay(11, nil, 2, 5, 3),
		// Extra endpoints so both 1..4 chain tips stay degree one
		testWay(12, nil, 6, 1),
	}
	g := BuildGraph(nodes, ways)
	require.Equal(t, []osm.NodeID{4, 6}, g.Endpoints())

	paths, _ := decompose(t, g, DefaultPairCap)
	require.Len(t, paths, 1)
	assert.Equal(t, []osm.NodeID{4, 3, 2, 1, 6}, paths[0])
}

func TestDecomposeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := starGraph(4)

	paths, _ := decomposeComponent(ctx, g, DefaultPairCap, zap.NewNop())
	assert.Empty(t, paths)
}
