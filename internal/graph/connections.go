package graph

// BuildConnections populates each road's per-lane outgoing connections.
// The outgoing set of a road is every road recorded as starting at its
// end node, excluding the road itself. Each outgoing road gets a uniform
// probability of 1/m, and the full distribution is attached identically
// to every lane — lane-level differentiation is deliberately not derived
// from turn-lane tags. An empty outgoing set means a dead end or a road
// leaving the imported region.
func BuildConnections(net *Network) {
	for i := range net.Roads {
		road := &net.Roads[i]

		segment, ok := net.Segments[road.ID]
		if !ok {
			continue
		}

		var outgoing []RoadID
		for _, ref := range net.NodeRoads[segment.EndNodeID] {
			if ref.StartsHere && ref.Road != road.ID {
				outgoing = append(outgoing, ref.Road)
			}
		}
		if len(outgoing) == 0 {
			continue
		}

		probability := 1.0 / float64(len(outgoing))
		for lane := 0; lane < road.Lanes; lane++ {
			for _, target := range outgoing {
				road.Lane[lane] = append(road.Lane[lane], Connection{
					Target:      target,
					Probability: probability,
				})
				net.Stats.ConnectionsCreated++
			}
		}
	}
}
