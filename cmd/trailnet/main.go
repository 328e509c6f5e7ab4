package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jozovek/trailnet"
	"go.uber.org/zap"
)

var (
	fileName    = flag.String("file", "trails_raw.json", "Filename of raw element collection (*.json Overpass export, *.osm / *.xml or *.pbf)")
	county      = flag.String("county", "", "County name used to scope synthesized trail identifiers")
	out         = flag.String("out", "trails.csv", "Base filename of CSV output. E.g.: for 'map.csv' two files will be produced: 'map_trails.csv' and 'map_trail_points.csv'")
	geojsonOut  = flag.String("geojson", "", "Optional GeoJSON output filename")
	geomFormat  = flag.String("geomf", "wkt", "Format of geometry column in CSV output. Expected values: wkt / geojson")
	pairCap     = flag.Int("paircap", trailnet.DefaultPairCap, "Maximum endpoint pairs enumerated per complex component (0 disables complex decomposition)")
	tolerance   = flag.Float64("tolerance", trailnet.DefaultSimplifyTolerance, "Geometry simplification tolerance in decimal degrees (0 disables simplification)")
	workersNum  = flag.Int("workers", 0, "Number of concurrent component workers (0 = number of CPUs)")
	development = flag.Bool("dev", false, "Use human-readable development logging")
)

func main() {
	flag.Parse()

	logger, err := buildLogger(*development)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	data, err := trailnet.ReadElements(*fileName)
	if err != nil {
		logger.Fatal("can't read elements", zap.String("file", *fileName), zap.Error(err))
	}

	options := []func(*trailnet.Reconstructor){
		trailnet.WithCounty(*county),
		trailnet.WithPairCap(*pairCap),
		trailnet.WithSimplifyTolerance(*tolerance),
		trailnet.WithLogger(logger),
	}
	if *workersNum > 0 {
		options = append(options, trailnet.WithWorkers(*workersNum))
	}
	reconstructor := trailnet.NewReconstructor(options...)

	st := time.Now()
	result, err := reconstructor.Reconstruct(context.Background(), data)
	if err != nil {
		logger.Fatal("reconstruction failed", zap.Error(err))
	}
	logger.Info("done",
		zap.Int("trails", len(result.Trails)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("elapsed", time.Since(st)))
	for _, warning := range result.Warnings {
		logger.Warn(warning.Kind.String(), zap.String("details", warning.Message))
	}

	if err := trailnet.ExportToCSV(result, *out, *geomFormat); err != nil {
		logger.Fatal("can't export CSV", zap.Error(err))
	}

	if *geojsonOut != "" {
		collection := trailnet.TrailsToGeoJSON(result.Trails)
		b, err := json.Marshal(collection)
		if err != nil {
			logger.Fatal("can't marshal GeoJSON", zap.Error(err))
		}
		if err := os.WriteFile(*geojsonOut, b, 0644); err != nil {
			logger.Fatal("can't write GeoJSON", zap.Error(err))
		}
	}
}

func buildLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
