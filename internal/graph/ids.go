package graph

// PackSyntheticID combines a way ID and a signed segment index into the
// temporary identity used during segmentation: lower 48 bits carry the
// way ID, upper 16 the index. Forward segments use indices 0,1,2,...,
// reverse segments -1,-2,..., so the result is distinct per
// (way, direction, position).
func PackSyntheticID(wayID int64, segmentIndex int) int64 {
	return int64(segmentIndex)<<48 | (wayID & 0xFFFFFFFFFFFF)
}

// RoadIDAllocator hands out the authoritative road IDs assigned when
// segments are materialized into Road entities. IDs are sequential from
// 1 and independent of the synthetic scheme, which keeps the conversion
// deterministic for identical input.
type RoadIDAllocator struct {
	next RoadID
}

// NewRoadIDAllocator creates an allocator starting at ID 1
func NewRoadIDAllocator() *RoadIDAllocator {
	return &RoadIDAllocator{next: 1}
}

// Next returns the next authoritative road ID
func (a *RoadIDAllocator) Next() RoadID {
	id := a.next
	a.next++
	return id
}
