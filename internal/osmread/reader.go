package osmread

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/roadsim/osm2net/internal/graph"
	"github.com/roadsim/osm2net/internal/nodeindex"
	"github.com/roadsim/osm2net/internal/profile"
)

// Result holds what one read pass produced: the accepted ways and the
// raw read counters. Node coordinates go into the store handed to Read.
type Result struct {
	Ways      []graph.Way
	NodesRead int64
	WaysRead  int64
}

// ReadFile streams an OSM XML file into the node store and the accepted
// way list. PBF and other binary variants are rejected; the scanner
// abstraction would take them, but the tool's input contract is plain
// .osm XML.
func ReadFile(ctx context.Context, path string, prof *profile.Profile, store nodeindex.Store) (*Result, error) {
	if strings.HasSuffix(path, ".pbf") {
		return nil, fmt.Errorf("unsupported input format %q: convert PBF to .osm XML first", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OSM file: %w", err)
	}
	defer f.Close()

	return Read(ctx, f, prof, store)
}

// Read consumes a pull-based scan of OSM XML from r. Nodes are stored as
// they arrive; ways are kept only when their highway type is accepted by
// the profile and they reference at least two nodes. OSM XML carries no
// ordering guarantee between element kinds beyond way node lists being
// ordered as drawn, so nothing here assumes nodes precede ways.
func Read(ctx context.Context, r io.Reader, prof *profile.Profile, store nodeindex.Store) (*Result, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	result := &Result{}

	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			store.Put(int64(obj.ID), obj.Lat, obj.Lon)
			result.NodesRead++
		case *osm.Way:
			way, ok := convertWay(obj, prof)
			if !ok {
				continue
			}
			result.Ways = append(result.Ways, way)
			result.WaysRead++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("OSM parse error: %w", err)
	}

	return result, nil
}

// convertWay maps an OSM way to the converter's way record, applying the
// acceptance rules and tag parsing. Returns ok=false for discarded ways.
func convertWay(w *osm.Way, prof *profile.Profile) (graph.Way, bool) {
	tags := w.TagMap()

	highway := tags["highway"]
	if !prof.Accepts(highway) || len(w.Nodes) < 2 {
		return graph.Way{}, false
	}

	way := graph.Way{
		ID:       int64(w.ID),
		NodeIDs:  make([]int64, len(w.Nodes)),
		Highway:  highway,
		Name:     tags["name"],
		Oneway:   parseOneway(tags["oneway"]),
		Lanes:    ParseLanes(tags["lanes"]),
		MaxSpeed: ParseMaxSpeed(tags["maxspeed"]),
	}
	for i, node := range w.Nodes {
		way.NodeIDs[i] = int64(node.ID)
	}

	return way, true
}

func parseOneway(v string) bool {
	return v == "yes" || v == "true" || v == "1"
}
