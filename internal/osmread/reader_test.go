package osmread

import (
	"context"
	"strings"
	"testing"

	"github.com/roadsim/osm2net/internal/nodeindex"
	"github.com/roadsim/osm2net/internal/profile"
)

const testXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="48.1500" lon="11.5800"/>
  <node id="2" lat="48.1501" lon="11.5801"/>
  <node id="3" lat="48.1502" lon="11.5802"/>
  <node id="4" lat="48.1503" lon="11.5803"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
    <tag k="name" v="Schellingstrasse"/>
    <tag k="oneway" v="yes"/>
    <tag k="lanes" v="2"/>
    <tag k="maxspeed" v="30"/>
  </way>
  <way id="101">
    <nd ref="2"/>
    <nd ref="4"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="102">
    <nd ref="4"/>
    <tag k="highway" v="residential"/>
  </way>
  <way id="103">
    <nd ref="3"/>
    <nd ref="4"/>
  </way>
</osm>`

func TestRead(t *testing.T) {
	store := nodeindex.NewMemoryStore()
	defer store.Close()

	result, err := Read(context.Background(), strings.NewReader(testXML), profile.Default(), store)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if result.NodesRead != 4 {
		t.Errorf("nodesRead = %d, want 4", result.NodesRead)
	}

	// Way 101 (footway), 102 (single node) and 103 (untagged) are discarded
	if result.WaysRead != 1 {
		t.Fatalf("waysRead = %d, want 1", result.WaysRead)
	}

	way := result.Ways[0]
	if way.ID != 100 {
		t.Errorf("way ID = %d, want 100", way.ID)
	}
	if len(way.NodeIDs) != 3 || way.NodeIDs[0] != 1 || way.NodeIDs[2] != 3 {
		t.Errorf("way nodes = %v, want [1 2 3]", way.NodeIDs)
	}
	if way.Highway != "residential" || way.Name != "Schellingstrasse" {
		t.Errorf("way tags = %q/%q", way.Highway, way.Name)
	}
	if !way.Oneway {
		t.Error("oneway tag not applied")
	}
	if way.Lanes != 2 {
		t.Errorf("lanes = %d, want 2", way.Lanes)
	}
	if way.MaxSpeed < 8.32 || way.MaxSpeed > 8.34 {
		t.Errorf("maxSpeed = %f, want 8.33 (30 km/h)", way.MaxSpeed)
	}

	lat, lon, ok := store.Get(2)
	if !ok || lat != 48.1501 || lon != 11.5801 {
		t.Errorf("stored node 2 = (%f, %f, %v)", lat, lon, ok)
	}
}

func TestReadMalformedXML(t *testing.T) {
	store := nodeindex.NewMemoryStore()
	defer store.Close()

	_, err := Read(context.Background(), strings.NewReader("<osm><node id="), profile.Default(), store)
	if err == nil {
		t.Fatal("expected parse error for malformed XML")
	}
}

func TestReadFileRejectsPBF(t *testing.T) {
	store := nodeindex.NewMemoryStore()
	defer store.Close()

	_, err := ReadFile(context.Background(), "munich.osm.pbf", profile.Default(), store)
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported-format error, got %v", err)
	}
}
