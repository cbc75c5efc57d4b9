package graph

import (
	"time"

	"go.uber.org/zap"

	"github.com/roadsim/osm2net/internal/profile"
)

// Assembler runs the graph-construction pipeline: boundary detection,
// way segmentation, Road materialization with authoritative IDs, the
// synthetic→authoritative re-keying, and connection building. One
// assembler serves one import run.
type Assembler struct {
	coords CoordSource
	prof   *profile.Profile
	log    *zap.Logger
}

// NewAssembler creates an assembler over the given coordinate source and
// road profile.
func NewAssembler(coords CoordSource, prof *profile.Profile, log *zap.Logger) *Assembler {
	return &Assembler{coords: coords, prof: prof, log: log}
}

// Assemble builds the routable network from the accepted ways. The
// readStats counters (nodes and ways read) are carried into the
// network's stats block.
func (a *Assembler) Assemble(ways []Way, readStats Stats) *Network {
	net := &Network{
		Segments:  make(map[RoadID]RoadSegment),
		NodeRoads: make(map[int64][]NodeRoadRef),
		Stats:     readStats,
	}

	start := time.Now()
	boundaries := DetectBoundaries(ways)
	net.Stats.IntersectionsFound = int64(len(boundaries))
	a.log.Info("Identified intersections",
		zap.Int("intersections", len(boundaries)),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)))

	start = time.Now()
	records := NewSegmenter(a.coords, a.prof).SegmentWays(ways, boundaries)
	net.Stats.SegmentsCreated = int64(len(records))
	a.log.Info("Split ways into road segments",
		zap.Int("segments", len(records)),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)))

	// Materialize Road entities in segment production order. The
	// allocator assigns authoritative IDs independently of the
	// synthetic scheme; the i-th segment becomes the i-th road.
	alloc := NewRoadIDAllocator()
	net.Roads = make([]Road, 0, len(records))
	for _, rec := range records {
		id := alloc.Next()
		segment := rec.Segment

		// Re-key segment metadata and the node→roads index from the
		// synthetic ID to the authoritative one.
		net.Segments[id] = segment
		net.NodeRoads[segment.StartNodeID] = append(net.NodeRoads[segment.StartNodeID],
			NodeRoadRef{Road: id, StartsHere: true})
		net.NodeRoads[segment.EndNodeID] = append(net.NodeRoads[segment.EndNodeID],
			NodeRoadRef{Road: id, StartsHere: false})

		net.Roads = append(net.Roads, Road{
			ID:       id,
			Length:   segment.Length,
			Lanes:    segment.Lanes,
			MaxSpeed: segment.MaxSpeed,
			Lane:     make([][]Connection, segment.Lanes),
		})
	}

	start = time.Now()
	BuildConnections(net)
	a.log.Info("Built lane connections",
		zap.Int64("connections", net.Stats.ConnectionsCreated),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)))

	return net
}
