package graph

// RoadID identifies a road in the assembled network. During segmentation
// roads carry a synthetic ID packed from the source way ID and segment
// index; the assembler replaces those with sequential authoritative IDs
// when the Road entities are materialized.
type RoadID int64

// Way is one accepted OSM way: an ordered node path with the tags the
// converter cares about. Lanes and MaxSpeed are negative when the way
// carried no usable tag.
type Way struct {
	ID       int64
	NodeIDs  []int64
	Highway  string
	Name     string
	Oneway   bool
	Lanes    int     // -1 means not specified
	MaxSpeed float64 // m/s, -1 means not specified
}

// RoadSegment is the span of a way between two consecutive boundary
// nodes, in one traversal direction. Never mutated after creation.
type RoadSegment struct {
	StartNodeID int64
	EndNodeID   int64
	StartLat    float64
	StartLon    float64
	EndLat      float64
	EndLon      float64
	Length      float64 // meters, >= 1.0
	Lanes       int
	MaxSpeed    float64 // m/s
	Oneway      bool
	Name        string
	WayID       int64 // source OSM way, kept for debugging and export
}

// Connection is one outgoing transition from a lane of a road
type Connection struct {
	Target      RoadID
	Probability float64
}

// Road is the graph-level entity handed to the simulator. Lane holds one
// connection list per lane; ConnectionBuilder fills every lane with the
// same uniform distribution.
type Road struct {
	ID       RoadID
	Length   float64
	Lanes    int
	MaxSpeed float64
	Lane     [][]Connection
}

// NodeRoadRef records that a road starts or ends at a node
type NodeRoadRef struct {
	Road       RoadID
	StartsHere bool
}

// Stats are the run-level counters reported after a conversion
type Stats struct {
	NodesRead          int64
	WaysRead           int64
	IntersectionsFound int64
	SegmentsCreated    int64
	ConnectionsCreated int64
}

// CoordSource resolves node IDs to coordinates. Absent nodes are a
// tolerated data-quality condition reported through ok.
type CoordSource interface {
	Get(nodeID int64) (lat, lon float64, ok bool)
}

// Network is the assembled road graph for one import run
type Network struct {
	// Roads in construction order; Roads[i].ID is the authoritative ID
	// of the i-th segment produced by the segmenter.
	Roads []Road
	// Segments keyed by authoritative road ID, exactly one per road
	Segments map[RoadID]RoadSegment
	// NodeRoads maps node ID to the roads touching it, on authoritative IDs
	NodeRoads map[int64][]NodeRoadRef
	Stats     Stats
}
