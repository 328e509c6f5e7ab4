package trailnet

import (
	"github.com/paulmach/osm"
)

var (
	trailHighwayTags = map[string]struct{}{
		"path":    {},
		"footway": {},
		"track":   {},
	}

	parkLeisureTags = map[string]struct{}{
		"park":           {},
		"nature_reserve": {},
	}

	poiTourismTags = map[string]struct{}{
		"viewpoint":   {},
		"information": {},
	}

	poiAmenityTags = map[string]struct{}{
		"drinking_water": {},
		"parking":        {},
		"toilets":        {},
	}
)

// IsTrailWay reports whether way tags describe a hikeable trail segment
func IsTrailWay(tags osm.Tags) bool {
	if _, ok := trailHighwayTags[tags.Find("highway")]; ok {
		return true
	}
	if tags.Find("route") == "hiking" {
		return true
	}
	return tags.Find("foot") == "yes"
}

// IsParkWay reports whether way tags describe a park or protected area
func IsParkWay(tags osm.Tags) bool {
	if _, ok := parkLeisureTags[tags.Find("leisure")]; ok {
		return true
	}
	return tags.Find("boundary") == "protected_area"
}

// IsPOINode reports whether node tags describe a point of interest for hiking
func IsPOINode(tags osm.Tags) bool {
	if _, ok := poiTourismTags[tags.Find("tourism")]; ok {
		return true
	}
	if tags.Find("natural") == "peak" {
		return true
	}
	if _, ok := poiAmenityTags[tags.Find("amenity")]; ok {
		return true
	}
	if tags.Find("information") == "guidepost" {
		return true
	}
	return tags.Find("leisure") == "picnic_table"
}

// FilterTrailWays returns the subset of ways that look like trails,
// preserving input order.
func FilterTrailWays(ways []*WayData) []*WayData {
	trailWays := make([]*WayData, 0, len(ways))
	for _, way := range ways {
		if IsTrailWay(way.Tags) {
			trailWays = append(trailWays, way)
		}
	}
	return trailWays
}
