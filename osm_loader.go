package trailnet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ReadElements loads a raw element collection from file. Supported formats:
// Overpass JSON (*.json), OSM XML (*.osm, *.xml) and PBF (*.pbf).
func ReadElements(filename string) (*RawData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open elements file")
	}
	defer file.Close()

	ext := filepath.Ext(filename)
	if ext == ".json" {
		var raw struct {
			Elements []Element `json:"elements"`
		}
		if err := json.NewDecoder(file).Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "Can't decode element collection")
		}
		return ExtractRawData(raw.Elements), nil
	}

	var scanner OSMScanner
	switch ext {
	case ".osm", ".xml":
		scanner = osmxml.New(context.Background(), file)
	case ".pbf":
		scanner = osmpbf.New(context.Background(), file, 4)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	defer scanner.Close()

	data := newRawData()
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			data.Nodes[obj.ID] = &Node{
				ID:   obj.ID,
				Geom: orb.Point{obj.Lon, obj.Lat},
				Tags: obj.Tags,
			}
		case *osm.Way:
			way := &WayData{
				ID:    obj.ID,
				Nodes: make([]osm.NodeID, 0, len(obj.Nodes)),
				Tags:  make(osm.Tags, len(obj.Tags)),
			}
			copy(way.Tags, obj.Tags)
			for _, wayNode := range obj.Nodes {
				way.Nodes = append(way.Nodes, wayNode.ID)
			}
			data.Ways = append(data.Ways, way)
		case *osm.Relation:
			relation := &RelationData{
				ID:      obj.ID,
				Members: make([]Member, 0, len(obj.Members)),
				Tags:    obj.Tags,
			}
			for _, member := range obj.Members {
				relation.Members = append(relation.Members, Member{
					Type: string(member.Type),
					Ref:  member.Ref,
					Role: member.Role,
				})
			}
			data.Relations[obj.ID] = relation
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Can't scan elements")
	}
	return data, nil
}
