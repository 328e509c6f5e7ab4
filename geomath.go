package trailnet

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

const (
	earthRadiusMiles = 3956.0
	pi180            = math.Pi / 180.0

	// DefaultSimplifyTolerance is the Douglas-Peucker tolerance (decimal
	// degrees) applied to trail geometry before export. Zero disables
	// simplification.
	DefaultSimplifyTolerance = 0.0001
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// haversineMiles returns great-circle distance between two points (statute miles).
// Points are (longitude, latitude) in decimal degrees.
func haversineMiles(p, q orb.Point) float64 {
	lon1 := degreesToRadians(p.Lon())
	lat1 := degreesToRadians(p.Lat())
	lon2 := degreesToRadians(q.Lon())
	lat2 := degreesToRadians(q.Lat())
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))
	return c * earthRadiusMiles
}

// lineLengthMiles returns length for given line (statute miles)
func lineLengthMiles(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += haversineMiles(line[i-1], line[i])
	}
	return totalLength
}

// simplifyLine reduces the number of points in given line using the
// Douglas-Peucker algorithm. Tolerance is in decimal degrees; endpoints are
// always preserved and the result is an in-order subsequence of the input.
// Tolerance <= 0 returns the input untouched.
func simplifyLine(line orb.LineString, tolerance float64) orb.LineString {
	if tolerance <= 0 || len(line) < 3 {
		return line
	}
	// The orb simplifier mutates the line it is given
	clone := make(orb.LineString, len(line))
	copy(clone, line)
	return simplify.DouglasPeucker(tolerance).Simplify(clone).(orb.LineString)
}
