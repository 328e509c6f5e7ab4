package trailnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overpassSample = `{
  "version": 0.6,
  "generator": "Overpass API",
  "elements": [
    {"type": "node", "id": 1, "lat": 39.9526, "lon": -75.1652},
    {"type": "node", "id": 2, "lat": 39.9671, "lon": -75.1804, "tags": {"natural": "peak"}},
    {"type": "way", "id": 10, "nodes": [1, 2], "tags": {"highway": "path", "surface": "dirt"}},
    {"type": "relation", "id": 20, "members": [{"type": "way", "ref": 10, "role": ""}], "tags": {"route": "hiking"}},
    {"type": "node", "lat": 1.0, "lon": 1.0}
  ]
}`

func TestReadElementsOverpassJSON(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(filename, []byte(overpassSample), 0644))

	data, err := ReadElements(filename)
	require.NoError(t, err)

	require.Len(t, data.Nodes, 2)
	node := data.Nodes[1]
	require.NotNil(t, node)
	assert.InDelta(t, -75.1652, node.Geom.Lon(), 1e-9)
	assert.InDelta(t, 39.9526, node.Geom.Lat(), 1e-9)
	assert.Equal(t, "peak", data.Nodes[2].Tags.Find("natural"))

	require.Len(t, data.Ways, 1)
	way := data.Ways[0]
	assert.Equal(t, osm.WayID(10), way.ID)
	assert.Equal(t, []osm.NodeID{1, 2}, way.Nodes)
	assert.Equal(t, "path", way.Tags.Find("highway"))

	require.Len(t, data.Relations, 1)
	relation := data.Relations[20]
	require.NotNil(t, relation)
	require.Len(t, relation.Members, 1)
	assert.Equal(t, int64(10), relation.Members[0].Ref)
	assert.Equal(t, "hiking", relation.Tags.Find("route"))

	// The id-less trailing node is dropped with a warning
	require.Len(t, data.Warnings, 1)
	assert.Equal(t, WARN_MALFORMED_ELEMENT, data.Warnings[0].Kind)
}

func TestReadElementsBadJSON(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(filename, []byte("{"), 0644))

	_, err := ReadElements(filename)
	assert.Error(t, err)
}

func TestReadElementsMissingFile(t *testing.T) {
	_, err := ReadElements(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadElementsUnknownExtension(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(filename, []byte(""), 0644))

	_, err := ReadElements(filename)
	assert.Error(t, err)
}

func TestExtractRawDataMalformedElements(t *testing.T) {
	lat := 10.0
	lon := 20.0
	elements := []Element{
		{Type: "node", ID: 1, Lat: &lat, Lon: &lon},
		{Type: "node", ID: 2, Lat: &lat}, // no longitude
		{Type: "way", Nodes: []int64{1, 2}},
		{Type: "relation"},
	}
	data := ExtractRawData(elements)

	assert.Len(t, data.Nodes, 1)
	assert.Empty(t, data.Ways)
	assert.Empty(t, data.Relations)
	assert.Len(t, data.Warnings, 3)
}
