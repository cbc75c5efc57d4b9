package graph

import "github.com/roadsim/osm2net/internal/profile"

// Minimum segment length in meters. Degenerate near-zero segments break
// downstream speed and travel-time calculations in the simulator.
const minSegmentLength = 1.0

// SegmentRecord pairs a road segment with its synthetic ID. The slice
// order produced by the segmenter is the order in which authoritative
// road IDs are later assigned.
type SegmentRecord struct {
	SyntheticID int64
	Segment     RoadSegment
}

// Segmenter splits accepted ways into directional road segments at
// boundary nodes, resolving coordinates, lengths, lane counts and speed
// limits along the way.
type Segmenter struct {
	coords CoordSource
	prof   *profile.Profile
}

// NewSegmenter creates a segmenter over the given coordinate source and
// road profile.
func NewSegmenter(coords CoordSource, prof *profile.Profile) *Segmenter {
	return &Segmenter{coords: coords, prof: prof}
}

// SegmentWays walks every way from its first to its last node, cutting at
// boundary nodes. Two-way ways are walked a second time in reverse node
// order; the two directions are independent segments with independent
// identities, never a shared bidirectional edge.
func (s *Segmenter) SegmentWays(ways []Way, boundaries map[int64]struct{}) []SegmentRecord {
	var records []SegmentRecord
	for _, way := range ways {
		if len(way.NodeIDs) < 2 {
			continue
		}

		records = s.walk(records, way, way.NodeIDs, false, boundaries)

		if !way.Oneway {
			reversed := make([]int64, len(way.NodeIDs))
			for i, id := range way.NodeIDs {
				reversed[len(way.NodeIDs)-1-i] = id
			}
			records = s.walk(records, way, reversed, true, boundaries)
		}
	}
	return records
}

// walk emits one segment per boundary-to-boundary span of ids. A span
// whose endpoint coordinates cannot be resolved is abandoned rather than
// failing the way; OSM extracts routinely reference nodes they don't
// contain.
func (s *Segmenter) walk(records []SegmentRecord, way Way, ids []int64, reverse bool, boundaries map[int64]struct{}) []SegmentRecord {
	segIndex := 0
	spanStart := 0

	for i := 1; i < len(ids); i++ {
		if _, cut := boundaries[ids[i]]; !cut && i != len(ids)-1 {
			continue
		}

		startID := ids[spanStart]
		endID := ids[i]

		startLat, startLon, okStart := s.coords.Get(startID)
		endLat, endLon, okEnd := s.coords.Get(endID)
		if !okStart || !okEnd {
			spanStart = i
			continue
		}

		// Sum pairwise distances over the span; pairs with an
		// unresolvable coordinate contribute zero.
		length := 0.0
		for j := spanStart; j < i; j++ {
			lat1, lon1, ok1 := s.coords.Get(ids[j])
			lat2, lon2, ok2 := s.coords.Get(ids[j+1])
			if ok1 && ok2 {
				length += Haversine(lat1, lon1, lat2, lon2)
			}
		}
		if length < minSegmentLength {
			length = minSegmentLength
		}

		segment := RoadSegment{
			StartNodeID: startID,
			EndNodeID:   endID,
			StartLat:    startLat,
			StartLon:    startLon,
			EndLat:      endLat,
			EndLon:      endLon,
			Length:      length,
			Lanes:       s.prof.LanesFor(way.Highway, way.Lanes),
			MaxSpeed:    s.prof.SpeedFor(way.Highway, way.MaxSpeed),
			// The reverse walk of a two-way way is one-way in the
			// traversal sense.
			Oneway: way.Oneway || reverse,
			Name:   way.Name,
			WayID:  way.ID,
		}

		index := segIndex
		if reverse {
			index = -(segIndex + 1)
		}
		records = append(records, SegmentRecord{
			SyntheticID: PackSyntheticID(way.ID, index),
			Segment:     segment,
		})

		segIndex++
		spanStart = i
	}

	return records
}
