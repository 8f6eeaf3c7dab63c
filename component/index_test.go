package component

import (
	"reflect"
	"testing"
)

func TestIndexCandidates(t *testing.T) {
	square := rectMask(8, 8)
	items := []body{
		{0, 0, square},
		{100, 0, square},
		{4, 4, square},
		{8, 0, square},
		{0, 0, nil},
	}
	ix := NewIndex(items)

	cases := []struct {
		name  string
		query body
		want  []int
	}{
		{"near_origin", body{0, 2, square}, []int{0, 2}},
		{"far_right", body{96, 4, square}, []int{1}},
		{"touching_edge_only", body{16, 0, square}, nil},
		{"straddles_three", body{6, 0, square}, []int{0, 2, 3}},
		{"empty_query", body{0, 0, nil}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ix.Candidates(c.query)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Candidates = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIndexFirstSkipsRemoved(t *testing.T) {
	square := rectMask(8, 8)
	items := []body{
		{50, 0, square},
		{0, 0, square},
		{2, 0, square},
	}
	ix := NewIndex(items)
	shot := body{3, 3, rectMask(2, 2)}

	if got := ix.First(shot); got != 1 {
		t.Fatalf("First = %d, want 1", got)
	}
	ix.Remove(1)
	if !ix.Removed(1) || ix.Removed(0) {
		t.Fatalf("Removed flags wrong: 0=%v 1=%v", ix.Removed(0), ix.Removed(1))
	}
	if got := ix.First(shot); got != 2 {
		t.Fatalf("First after remove = %d, want 2", got)
	}
	ix.Remove(2)
	if got := ix.First(shot); got != -1 {
		t.Fatalf("First after removing all hits = %d, want -1", got)
	}
	if ix.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ix.Len())
	}
}

func TestIndexMatchesLinearScan(t *testing.T) {
	diagonal := NewMaskFromFunc(12, 12, func(x, y int) bool { return x == y || x == 11-y })
	ring := NewMaskFromFunc(10, 10, func(x, y int) bool { return x == 0 || y == 0 || x == 9 || y == 9 })
	var items []body
	for i := 0; i < 6; i++ {
		items = append(items, body{float64(i * 9), float64(i%3) * 7, diagonal})
		items = append(items, body{float64(i*11) + 0.5, float64(i%2) * 13, ring})
	}
	ix := NewIndex(items)
	shot := rectMask(2, 5)

	for y := -6.0; y < 30; y += 1.5 {
		for x := -6.0; x < 70; x += 1.25 {
			q := body{x, y, shot}
			want := -1
			for i, it := range items {
				if Collide(q, it) {
					want = i
					break
				}
			}
			if got := ix.First(q); got != want {
				t.Fatalf("First at (%v,%v) = %d, linear scan = %d", x, y, got, want)
			}
		}
	}
}
