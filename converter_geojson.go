package trailnet

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// TrailGeoJSON returns GeoJSON representation of trail geometry
func TrailGeoJSON(trail *Trail) string {
	pts2d := make([][]float64, len(trail.Geometry))
	for i := range trail.Geometry {
		pts2d[i] = []float64{trail.Geometry[i].Lon(), trail.Geometry[i].Lat()}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// TrailsToGeoJSON converts trail records into a GeoJSON feature collection
// with the same attribute set the persistence layer stores.
func TrailsToGeoJSON(trails []*Trail) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, trail := range trails {
		pts2d := make([][]float64, len(trail.Geometry))
		for i := range trail.Geometry {
			pts2d[i] = []float64{trail.Geometry[i].Lon(), trail.Geometry[i].Lat()}
		}
		feature := geojson.NewFeature(geojson.NewLineStringGeometry(pts2d))
		feature.ID = trail.ID
		// Tags first so the canonical attributes below always win
		for key, value := range trail.Tags {
			feature.SetProperty(key, value)
		}
		feature.SetProperty("name", trail.Name)
		feature.SetProperty("difficulty", trail.Difficulty.String())
		feature.SetProperty("length_miles", trail.LengthMiles)
		feature.SetProperty("start_lon", trail.Start.Lon())
		feature.SetProperty("start_lat", trail.Start.Lat())
		if trail.County != "" {
			feature.SetProperty("county", trail.County)
		}
		collection.AddFeature(feature)
	}
	return collection
}
