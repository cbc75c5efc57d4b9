package graph

// DetectBoundaries classifies the node IDs at which ways must be cut into
// separate road segments. A node is a boundary when it is referenced by
// two or more accepted ways, and the first and last node of every way is
// a boundary regardless of usage, so every way yields at least one
// segment and dead ends terminate cleanly.
func DetectBoundaries(ways []Way) map[int64]struct{} {
	usage := make(map[int64]int)
	for _, way := range ways {
		for _, nodeID := range way.NodeIDs {
			usage[nodeID]++
		}
	}

	boundaries := make(map[int64]struct{})
	for nodeID, count := range usage {
		if count >= 2 {
			boundaries[nodeID] = struct{}{}
		}
	}

	for _, way := range ways {
		if len(way.NodeIDs) == 0 {
			continue
		}
		boundaries[way.NodeIDs[0]] = struct{}{}
		boundaries[way.NodeIDs[len(way.NodeIDs)-1]] = struct{}{}
	}

	return boundaries
}
