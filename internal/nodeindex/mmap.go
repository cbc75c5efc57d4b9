package nodeindex

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync/atomic"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	// Each node entry: lat (int32) + lon (int32) = 8 bytes
	// Using fixed-point: value * 1e7 to store as int32
	entrySize = 8
	// Maximum node ID we support (10 billion should be enough)
	maxNodeID = 10_000_000_000
)

// MmapStore is a memory-mapped node coordinate store backed by a sparse
// file. Coordinates live at offset = nodeID * 8, which gives O(1) lookup
// for any node ID without holding the extract's nodes in the Go heap.
type MmapStore struct {
	file  *os.File
	data  mmap.MMap
	count atomic.Int64
}

// NewMmapStore creates a flat-nodes store at path, truncating any
// existing file. The file is sparse; disk usage grows only with the
// node IDs actually written.
func NewMmapStore(path string) (*MmapStore, error) {
	size := int64(maxNodeID) * entrySize

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create flat nodes file: %w", err)
	}

	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to truncate flat nodes file: %w", err)
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap flat nodes file: %w", err)
	}

	return &MmapStore{file: f, data: data}, nil
}

// Put stores a node's coordinates
func (m *MmapStore) Put(nodeID int64, lat, lon float64) {
	if nodeID < 0 || nodeID >= maxNodeID {
		return // Ignore out of range
	}

	offset := nodeID * entrySize

	// Fixed-point with 7 decimal places, the native OSM precision
	latInt := int32(lat * 1e7)
	lonInt := int32(lon * 1e7)

	binary.LittleEndian.PutUint32(m.data[offset:], uint32(latInt))
	binary.LittleEndian.PutUint32(m.data[offset+4:], uint32(lonInt))
	m.count.Add(1)
}

// Get retrieves a node's coordinates
// Returns (0, 0, false) if the node was never written
func (m *MmapStore) Get(nodeID int64) (lat, lon float64, ok bool) {
	if nodeID < 0 || nodeID >= maxNodeID {
		return 0, 0, false
	}

	offset := nodeID * entrySize
	latInt := int32(binary.LittleEndian.Uint32(m.data[offset:]))
	lonInt := int32(binary.LittleEndian.Uint32(m.data[offset+4:]))

	// A zero pair means the slot was never written. (0,0) is a valid
	// location in the Gulf of Guinea; we accept that edge case.
	if latInt == 0 && lonInt == 0 {
		return 0, 0, false
	}

	return float64(latInt) / 1e7, float64(lonInt) / 1e7, true
}

// Count returns the number of Put calls since the store was created
func (m *MmapStore) Count() int64 {
	return m.count.Load()
}

// Close unmaps and removes the backing file
func (m *MmapStore) Close() error {
	path := m.file.Name()
	if err := m.data.Unmap(); err != nil {
		m.file.Close()
		return err
	}
	if err := m.file.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
