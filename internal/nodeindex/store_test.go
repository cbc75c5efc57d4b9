package nodeindex

import (
	"math"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, store Store) {
	t.Helper()

	store.Put(42, 48.1351, 11.5820)
	store.Put(7, -33.8688, 151.2093)

	lat, lon, ok := store.Get(42)
	if !ok {
		t.Fatal("node 42 not found after Put")
	}
	if math.Abs(lat-48.1351) > 1e-6 || math.Abs(lon-11.5820) > 1e-6 {
		t.Errorf("node 42 = (%f, %f), want (48.1351, 11.5820)", lat, lon)
	}

	lat, lon, ok = store.Get(7)
	if !ok || math.Abs(lat+33.8688) > 1e-6 || math.Abs(lon-151.2093) > 1e-6 {
		t.Errorf("node 7 = (%f, %f, %v)", lat, lon, ok)
	}

	if _, _, ok := store.Get(9999); ok {
		t.Error("lookup of absent node reported ok")
	}

	if store.Count() != 2 {
		t.Errorf("Count() = %d, want 2", store.Count())
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	testStore(t, store)
}

func TestMmapStore(t *testing.T) {
	store, err := NewMmapStore(filepath.Join(t.TempDir(), "flat_nodes.bin"))
	if err != nil {
		t.Fatalf("NewMmapStore() error: %v", err)
	}
	defer store.Close()
	testStore(t, store)
}

func TestMmapStoreIgnoresOutOfRange(t *testing.T) {
	store, err := NewMmapStore(filepath.Join(t.TempDir(), "flat_nodes.bin"))
	if err != nil {
		t.Fatalf("NewMmapStore() error: %v", err)
	}
	defer store.Close()

	store.Put(-1, 1, 1)
	if _, _, ok := store.Get(-1); ok {
		t.Error("negative node ID stored")
	}
}
