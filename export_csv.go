package trailnet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ExportToCSV writes the run's trail records and their flattened point rows.
// For fname 'map.csv' two files are produced: 'map_trails.csv' and
// 'map_trail_points.csv'. geomFormat selects the geometry column encoding,
// "wkt" or "geojson".
func ExportToCSV(result *Result, fname string, geomFormat string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameTrails := fmt.Sprintf(fnameParts[0] + "_trails.csv")
	fnamePoints := fmt.Sprintf(fnameParts[0] + "_trail_points.csv")

	err := exportTrailsToCSV(result.Trails, fnameTrails, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export trails")
	}

	err = exportTrailPointsToCSV(result.TrailPoints(), fnamePoints)
	if err != nil {
		return errors.Wrap(err, "Can't export trail points")
	}

	return nil
}

func exportTrailsToCSV(trails []*Trail, fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "name", "county", "difficulty", "length_miles", "start_lon", "start_lat", "surface", "highway", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, trail := range trails {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = TrailGeoJSON(trail)
		} else {
			geomStr = TrailWKT(trail)
		}
		err = writer.Write([]string{
			trail.ID,
			trail.Name,
			trail.County,
			trail.Difficulty.String(),
			fmt.Sprintf("%f", trail.LengthMiles),
			fmt.Sprintf("%f", trail.Start.Lon()),
			fmt.Sprintf("%f", trail.Start.Lat()),
			trail.Tags["surface"],
			trail.Tags["highway"],
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write trail")
		}
	}
	return nil
}

func exportTrailPointsToCSV(points []TrailPoint, fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"trail_id", "sequence", "longitude", "latitude"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, point := range points {
		err = writer.Write([]string{
			point.TrailID,
			fmt.Sprintf("%d", point.Sequence),
			fmt.Sprintf("%f", point.Lon),
			fmt.Sprintf("%f", point.Lat),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write trail point")
		}
	}
	return nil
}
