package nodeindex

// Store is a node coordinate lookup keyed by OSM node ID. A missing node
// is ordinary OSM data quality, not an error, so lookups report absence
// through ok rather than through an error value.
type Store interface {
	Put(nodeID int64, lat, lon float64)
	Get(nodeID int64) (lat, lon float64, ok bool)
	Count() int64
	Close() error
}

type coord struct {
	lat, lon float64
}

// MemoryStore keeps node coordinates in a plain map. The default choice;
// fine up to city-scale extracts.
type MemoryStore struct {
	coords map[int64]coord
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{coords: make(map[int64]coord)}
}

// Put stores a node's coordinates
func (s *MemoryStore) Put(nodeID int64, lat, lon float64) {
	s.coords[nodeID] = coord{lat: lat, lon: lon}
}

// Get retrieves a node's coordinates
func (s *MemoryStore) Get(nodeID int64) (lat, lon float64, ok bool) {
	c, ok := s.coords[nodeID]
	if !ok {
		return 0, 0, false
	}
	return c.lat, c.lon, true
}

// Count returns the number of stored nodes
func (s *MemoryStore) Count() int64 {
	return int64(len(s.coords))
}

// Close releases the store
func (s *MemoryStore) Close() error {
	s.coords = nil
	return nil
}
