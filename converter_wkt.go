package trailnet

import (
	"github.com/paulmach/orb/encoding/wkt"
)

// TrailWKT returns WKT representation of trail geometry
func TrailWKT(trail *Trail) string {
	return wkt.MarshalString(trail.Geometry)
}
