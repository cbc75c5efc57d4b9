package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roadsim/osm2net/internal/graph"
)

// FormatVersion is the version tag written into every network document
const FormatVersion = "1.0"

// Document is the serialized road network handed to the simulator
type Document struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	BBox    [4]float64 `json:"bbox"` // minLon, minLat, maxLon, maxLat
	Roads   []RoadDoc  `json:"roads"`
	Stats   StatsDoc   `json:"stats"`
}

// RoadDoc is one road record in the document
type RoadDoc struct {
	ID          graph.RoadID    `json:"id"`
	StartLat    float64         `json:"startLat"`
	StartLon    float64         `json:"startLon"`
	EndLat      float64         `json:"endLat"`
	EndLon      float64         `json:"endLon"`
	Name        string          `json:"name"`
	OSMWayID    int64           `json:"osmWayId"`
	Length      float64         `json:"length"`
	Lanes       int             `json:"lanes"`
	MaxSpeed    float64         `json:"maxSpeed"`
	Connections []ConnectionDoc `json:"connections"`
}

// ConnectionDoc is one outgoing lane connection of a road
type ConnectionDoc struct {
	RoadID      graph.RoadID `json:"roadId"`
	Lane        int          `json:"lane"`
	Probability float64      `json:"probability"`
}

// StatsDoc is the aggregate statistics block of the document
type StatsDoc struct {
	TotalRoads         int   `json:"totalRoads"`
	TotalIntersections int64 `json:"totalIntersections"`
	TotalConnections   int64 `json:"totalConnections"`
	NodesRead          int64 `json:"nodesRead"`
	WaysRead           int64 `json:"waysRead"`
}

// Build converts an assembled network into its document form
func Build(net *graph.Network, networkName string) *Document {
	doc := &Document{
		Name:    networkName,
		Version: FormatVersion,
		Roads:   make([]RoadDoc, 0, len(net.Roads)),
		Stats: StatsDoc{
			TotalRoads:         len(net.Roads),
			TotalIntersections: net.Stats.IntersectionsFound,
			TotalConnections:   net.Stats.ConnectionsCreated,
			NodesRead:          net.Stats.NodesRead,
			WaysRead:           net.Stats.WaysRead,
		},
	}

	minLat, maxLat := 90.0, -90.0
	minLon, maxLon := 180.0, -180.0

	for _, road := range net.Roads {
		segment := net.Segments[road.ID]

		minLat = min(minLat, min(segment.StartLat, segment.EndLat))
		maxLat = max(maxLat, max(segment.StartLat, segment.EndLat))
		minLon = min(minLon, min(segment.StartLon, segment.EndLon))
		maxLon = max(maxLon, max(segment.StartLon, segment.EndLon))

		rd := RoadDoc{
			ID:          road.ID,
			StartLat:    segment.StartLat,
			StartLon:    segment.StartLon,
			EndLat:      segment.EndLat,
			EndLon:      segment.EndLon,
			Name:        segment.Name,
			OSMWayID:    segment.WayID,
			Length:      road.Length,
			Lanes:       road.Lanes,
			MaxSpeed:    road.MaxSpeed,
			Connections: []ConnectionDoc{},
		}
		for lane, connections := range road.Lane {
			for _, conn := range connections {
				rd.Connections = append(rd.Connections, ConnectionDoc{
					RoadID:      conn.Target,
					Lane:        lane,
					Probability: conn.Probability,
				})
			}
		}
		doc.Roads = append(doc.Roads, rd)
	}

	if len(net.Roads) == 0 {
		doc.BBox = [4]float64{0, 0, 0, 0}
	} else {
		doc.BBox = [4]float64{minLon, minLat, maxLon, maxLat}
	}

	return doc
}

// WriteFile serializes the network document to path as indented JSON
func WriteFile(path string, net *graph.Network, networkName string) error {
	doc := Build(net, networkName)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode network document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write network document: %w", err)
	}
	return nil
}
