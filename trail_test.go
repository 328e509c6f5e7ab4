package trailnet

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleTrail(t *testing.T) {
	g := BuildGraph(chainNodes(3), []*WayData{
		testWay(10, osm.Tags{{Key: "highway", Value: "path"}}, 1, 2, 3),
	})

	trail := assembleTrail(g, []osm.NodeID{1, 2, 3})
	require.NotNil(t, trail)
	assert.Len(t, trail.Coordinates, 3)
	assert.InDelta(t, 2.0, trail.LengthMiles, 0.001)
	assert.Equal(t, trail.Coordinates[0], trail.Start)
	assert.Equal(t, "path", trail.Tags["highway"])
}

func TestAssembleTrailTooShort(t *testing.T) {
	g := BuildGraph(chainNodes(3), []*WayData{testWay(10, nil, 1, 2, 3)})
	assert.Nil(t, assembleTrail(g, []osm.NodeID{1}))
	assert.Nil(t, assembleTrail(g, nil))
}

func TestAssembleTrailMajorityTagResolution(t *testing.T) {
	nodes := chainNodes(4)
	ways := []*WayData{
		testWay(10, osm.Tags{{Key: "surface", Value: "gravel"}}, 1, 2),
		testWay(11, osm.Tags{{Key: "surface", Value: "gravel"}}, 2, 3),
		testWay(12, osm.Tags{{Key: "surface", Value: "dirt"}}, 3, 4),
	}
	g := BuildGraph(nodes, ways)

	trail := assembleTrail(g, []osm.NodeID{1, 2, 3, 4})
	require.NotNil(t, trail)
	assert.Equal(t, "gravel", trail.Tags["surface"])
}

func TestAssembleTrailTagTieBreaksFirstSeen(t *testing.T) {
	nodes := chainNodes(3)
	ways := []*WayData{
		testWay(10, osm.Tags{{Key: "surface", Value: "dirt"}}, 1, 2),
		testWay(11, osm.Tags{{Key: "surface", Value: "gravel"}}, 2, 3),
	}
	g := BuildGraph(nodes, ways)

	trail := assembleTrail(g, []osm.NodeID{1, 2, 3})
	require.NotNil(t, trail)
	assert.Equal(t, "dirt", trail.Tags["surface"])
}

func TestMajorityValue(t *testing.T) {
	assert.Equal(t, "gravel", majorityValue([]string{"gravel", "gravel", "dirt"}))
	assert.Equal(t, "dirt", majorityValue([]string{"dirt", "gravel"}))
	assert.Equal(t, "paved", majorityValue([]string{"paved"}))
}

func TestTrailName(t *testing.T) {
	assert.Equal(t, "Wissahickon Trail", trailName(map[string]string{"name": "Wissahickon Trail"}, 7))
	assert.Equal(t, "Trail 42A", trailName(map[string]string{"ref": "42A"}, 7))
	assert.Equal(t, "Trail 7", trailName(map[string]string{}, 7))
}
