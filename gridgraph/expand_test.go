// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/cellgrid/grid"
)

// TestExpandIsland_BasicLine tests a 1×3 line with a single water cell between two land cells.
// Grid: [1,0,1], Conn4
// Expected: must convert the middle cell at cost 1.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg := mustGraph(t, [][]int{{1, 0, 1}}, Conn4)
	if comps := gg.ConnectedComponents(); len(comps) != 2 {
		t.Fatalf("found %d components; want 2", len(comps))
	}

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []grid.Cell{at(0, 0), at(1, 0), at(2, 0)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestExpandIsland_MediumRow tests a 1×5 line where two land cells at the ends
// require converting 3 water cells.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg := mustGraph(t, [][]int{{1, 0, 0, 0, 1}}, Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 || path[0] != at(0, 0) || path[4] != at(4, 0) {
		t.Errorf("path = %v; want (0,0)..(4,0)", path)
	}
}

// TestExpandIsland_Diagonal compares connectivities on
//
//	1 0
//	0 1
//
// Conn8 merges the corners into one island; Conn4 needs one conversion.
func TestExpandIsland_Diagonal(t *testing.T) {
	rows := [][]int{
		{1, 0},
		{0, 1},
	}

	g8 := mustGraph(t, rows, Conn8)
	if n := len(g8.ConnectedComponents()); n != 1 {
		t.Fatalf("Conn8: %d components; want 1", n)
	}
	path, cost, err := g8.ExpandIsland(0, 0)
	if err != nil {
		t.Fatalf("Conn8 ExpandIsland error: %v", err)
	}
	if cost != 0 || !reflect.DeepEqual(path, []grid.Cell{at(0, 0)}) {
		t.Errorf("Conn8: path=%v cost=%d; want [(0,0)] 0", path, cost)
	}

	g4 := mustGraph(t, rows, Conn4)
	path, cost, err = g4.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("Conn4 ExpandIsland error: %v", err)
	}
	want := []grid.Cell{at(0, 0), at(1, 0), at(1, 1)}
	if cost != 1 || !reflect.DeepEqual(path, want) {
		t.Errorf("Conn4: path=%v cost=%d; want %v 1", path, cost, want)
	}
}

// TestExpandIsland_ThroughLand verifies land cells along the way are free.
//
//	1 0 1 0 1
func TestExpandIsland_ThroughLand(t *testing.T) {
	gg := mustGraph(t, [][]int{{1, 0, 1, 0, 1}}, Conn4)
	path, cost, err := gg.ExpandIsland(0, 2)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}
	if len(path) != 5 {
		t.Errorf("path = %v; want 5 cells", path)
	}
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg := mustGraph(t, [][]int{{1, 0, 1}}, Conn4)

	if _, _, err := gg.ExpandIsland(-1, 1); !errors.Is(err, ErrComponentIndex) {
		t.Errorf("src=-1: got %v; want ErrComponentIndex", err)
	}
	if _, _, err := gg.ExpandIsland(0, 2); !errors.Is(err, ErrComponentIndex) {
		t.Errorf("dst=2: got %v; want ErrComponentIndex", err)
	}
}
