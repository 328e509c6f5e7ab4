package trailnet

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Element is a single entry of a raw element collection as returned by the
// Overpass API: a type discriminator ("node" / "way" / "relation") plus the
// type-specific payload. Coordinates are pointers so an absent coordinate can
// be told apart from a zero one.
type Element struct {
	Type    string            `json:"type"`
	ID      int64             `json:"id"`
	Lat     *float64          `json:"lat,omitempty"`
	Lon     *float64          `json:"lon,omitempty"`
	Tags    map[string]string `json:"tags,omitempty"`
	Nodes   []int64           `json:"nodes,omitempty"`
	Members []Member          `json:"members,omitempty"`
}

// Member is a single relation member reference.
type Member struct {
	Type string `json:"type"`
	Ref  int64  `json:"ref"`
	Role string `json:"role"`
}

// Node is a single geographic point referenced by at least one way.
type Node struct {
	ID   osm.NodeID
	Geom orb.Point
	Tags osm.Tags
}

// WayData is an ordered polyline fragment referencing nodes by id.
type WayData struct {
	ID    osm.WayID
	Nodes []osm.NodeID
	Tags  osm.Tags
}

// RelationData groups ways and nodes by shared membership. Relations are kept
// for completeness; the decomposition policy does not consume them.
type RelationData struct {
	ID      osm.RelationID
	Members []Member
	Tags    osm.Tags
}

// RawData is a parsed raw element collection: the in-process input of the
// reconstruction engine.
type RawData struct {
	Nodes     map[osm.NodeID]*Node
	Relations map[osm.RelationID]*RelationData
	// Ways preserve input order. When two ways cover the same node pair the
	// later way in this slice wins the edge tags.
	Ways []*WayData
	// Warnings collected while parsing (malformed elements).
	Warnings []Warning
}

func newRawData() *RawData {
	return &RawData{
		Nodes:     make(map[osm.NodeID]*Node),
		Relations: make(map[osm.RelationID]*RelationData),
	}
}

// ExtractRawData converts a flat element sequence into typed node, way and
// relation collections. Elements missing an identity or, for nodes, a
// coordinate are dropped with a recorded warning.
func ExtractRawData(elements []Element) *RawData {
	data := newRawData()
	for _, element := range elements {
		switch element.Type {
		case "node":
			if element.ID == 0 {
				data.warnMalformed("node element without id")
				continue
			}
			if element.Lat == nil || element.Lon == nil {
				data.warnMalformed(fmt.Sprintf("node %d without coordinates", element.ID))
				continue
			}
			data.Nodes[osm.NodeID(element.ID)] = &Node{
				ID:   osm.NodeID(element.ID),
				Geom: orb.Point{*element.Lon, *element.Lat},
				Tags: tagsFromMap(element.Tags),
			}
		case "way":
			if element.ID == 0 {
				data.warnMalformed("way element without id")
				continue
			}
			way := &WayData{
				ID:    osm.WayID(element.ID),
				Nodes: make([]osm.NodeID, 0, len(element.Nodes)),
				Tags:  tagsFromMap(element.Tags),
			}
			for _, nodeID := range element.Nodes {
				way.Nodes = append(way.Nodes, osm.NodeID(nodeID))
			}
			data.Ways = append(data.Ways, way)
		case "relation":
			if element.ID == 0 {
				data.warnMalformed("relation element without id")
				continue
			}
			data.Relations[osm.RelationID(element.ID)] = &RelationData{
				ID:      osm.RelationID(element.ID),
				Members: element.Members,
				Tags:    tagsFromMap(element.Tags),
			}
		}
	}
	return data
}

func (data *RawData) warnMalformed(message string) {
	data.Warnings = append(data.Warnings, Warning{Kind: WARN_MALFORMED_ELEMENT, Message: message})
}

// tagsFromMap builds an ordered tag list from an unordered mapping. Keys are
// sorted so repeated runs see identical tag order.
func tagsFromMap(m map[string]string) osm.Tags {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make(osm.Tags, 0, len(m))
	for _, k := range keys {
		tags = append(tags, osm.Tag{Key: k, Value: m[k]})
	}
	return tags
}
