package trailnet

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Trail is a reconstructed, attributed trail polyline. Immutable once
// produced.
type Trail struct {
	ID          string
	Name        string
	County      string
	Difficulty  Difficulty
	LengthMiles float64
	// Coordinates is the full-resolution (lon, lat) sequence along the
	// reconstructed path. LengthMiles is measured along this sequence,
	// before any simplification.
	Coordinates orb.LineString
	// Geometry is the display polyline: Coordinates simplified with the
	// configured tolerance, or the same sequence when simplification is off.
	Geometry orb.LineString
	Tags     map[string]string
	Start    orb.Point
}

// assembleTrail builds a trail record from a graph path: ordered coordinates,
// length measured along the full-resolution coordinates, and edge tags
// resolved by majority vote.
// For each tag key the value occurring most often along the path wins; ties
// break toward the value seen first in path order. Returns nil for paths
// shorter than 2 nodes.
func assembleTrail(g *Graph, path []osm.NodeID) *Trail {
	if len(path) < 2 {
		return nil
	}
	coordinates := make(orb.LineString, 0, len(path))
	for _, id := range path {
		pt, ok := g.Point(id)
		if !ok {
			return nil
		}
		coordinates = append(coordinates, pt)
	}

	keysInOrder := []string{}
	valuesByKey := make(map[string][]string)
	for i := 0; i < len(path)-1; i++ {
		edge := g.EdgeBetween(path[i], path[i+1])
		if edge == nil {
			return nil
		}
		for _, tag := range edge.Tags {
			if _, ok := valuesByKey[tag.Key]; !ok {
				keysInOrder = append(keysInOrder, tag.Key)
			}
			valuesByKey[tag.Key] = append(valuesByKey[tag.Key], tag.Value)
		}
	}

	tags := make(map[string]string, len(keysInOrder))
	for _, key := range keysInOrder {
		tags[key] = majorityValue(valuesByKey[key])
	}

	return &Trail{
		Coordinates: coordinates,
		Geometry:    coordinates,
		LengthMiles: lineLengthMiles(coordinates),
		Tags:        tags,
		Start:       coordinates[0],
	}
}

// majorityValue returns the most frequent value; ties break toward the value
// seen first.
func majorityValue(values []string) string {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		counts[value]++
	}
	best := values[0]
	bestCount := 0
	for _, value := range values {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}

// trailName resolves a display name: the name tag, then "Trail {ref}", then
// a synthesized "Trail {n}" from the run-scoped sequence number.
func trailName(tags map[string]string, sequence int) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if ref := tags["ref"]; ref != "" {
		return fmt.Sprintf("Trail %s", ref)
	}
	return fmt.Sprintf("Trail %d", sequence)
}
