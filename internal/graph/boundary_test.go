package graph

import "testing"

func TestDetectBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		ways       []Way
		want       []int64
		dontWant   []int64
	}{
		{
			name: "empty way list",
			ways: nil,
			want: nil,
		},
		{
			name: "single way marks only its endpoints",
			ways: []Way{
				{ID: 1, NodeIDs: []int64{10, 11, 12, 13}},
			},
			want:     []int64{10, 13},
			dontWant: []int64{11, 12},
		},
		{
			name: "node shared by two ways is a boundary",
			ways: []Way{
				{ID: 1, NodeIDs: []int64{10, 11, 12}},
				{ID: 2, NodeIDs: []int64{20, 11, 21}},
			},
			want: []int64{10, 12, 20, 21, 11},
		},
		{
			name: "dead end endpoint referenced once is still a boundary",
			ways: []Way{
				{ID: 1, NodeIDs: []int64{10, 11, 12}},
				{ID: 2, NodeIDs: []int64{12, 13, 14}},
			},
			want:     []int64{10, 12, 14},
			dontWant: []int64{11, 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectBoundaries(tt.ways)
			for _, id := range tt.want {
				if _, ok := got[id]; !ok {
					t.Errorf("node %d missing from boundary set", id)
				}
			}
			for _, id := range tt.dontWant {
				if _, ok := got[id]; ok {
					t.Errorf("node %d unexpectedly in boundary set", id)
				}
			}
			if tt.ways == nil && len(got) != 0 {
				t.Errorf("expected empty boundary set, got %d entries", len(got))
			}
		})
	}
}
