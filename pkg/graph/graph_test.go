package graph

import (
	"reflect"
	"strings"
	"testing"
)

func triangle() []Edge {
	return []Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 4},
	}
}

func TestNodes(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  []string
	}{
		{
			name:  "empty",
			edges: nil,
			want:  []string{},
		},
		{
			name:  "triangle sorted",
			edges: triangle(),
			want:  []string{"A", "B", "C"},
		},
		{
			name: "duplicates collapse",
			edges: []Edge{
				{From: "X", To: "Y", Weight: 1},
				{From: "Y", To: "X", Weight: 2},
			},
			want: []string{"X", "Y"},
		},
		{
			name: "self loop contributes one node",
			edges: []Edge{
				{From: "Z", To: "Z", Weight: 3},
			},
			want: []string{"Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nodes(tt.edges)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Nodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjacency(t *testing.T) {
	adj := Adjacency(triangle())

	if len(adj) != 3 {
		t.Fatalf("adjacency has %d nodes, want 3", len(adj))
	}

	// Undirected: every edge appears in both endpoints' lists.
	if len(adj["A"]) != 2 || len(adj["B"]) != 2 || len(adj["C"]) != 2 {
		t.Errorf("neighbor counts = %d/%d/%d, want 2/2/2",
			len(adj["A"]), len(adj["B"]), len(adj["C"]))
	}

	found := false
	for _, n := range adj["B"] {
		if n.To == "A" && n.Weight == 1 {
			found = true
		}
	}
	if !found {
		t.Error("reverse entry B→A missing from adjacency")
	}
}

func TestAdjacencyParallelEdgesKept(t *testing.T) {
	adj := Adjacency([]Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "B", Weight: 5},
	})
	if len(adj["A"]) != 2 {
		t.Errorf("parallel edges deduplicated: len(adj[A]) = %d, want 2", len(adj["A"]))
	}
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight(triangle()); got != 7 {
		t.Errorf("TotalWeight() = %v, want 7", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Errorf("TotalWeight(nil) = %v, want 0", got)
	}
}

func TestEdgeKey(t *testing.T) {
	a := Edge{From: "A", To: "B", Weight: 1}
	b := Edge{From: "B", To: "A", Weight: 9}
	if a.Key() != b.Key() {
		t.Errorf("Key() not order-independent: %q vs %q", a.Key(), b.Key())
	}
	c := Edge{From: "A", To: "C"}
	if a.Key() == c.Key() {
		t.Errorf("distinct pairs share key %q", a.Key())
	}
}

func TestReadEdges(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantEdges   int
		wantSkipped int
	}{
		{
			name:        "header only",
			input:       "source,destination,weight\n",
			wantEdges:   0,
			wantSkipped: 0,
		},
		{
			name:        "valid records",
			input:       "source,destination,weight\nA,B,1\nB,C,2.5\n",
			wantEdges:   2,
			wantSkipped: 0,
		},
		{
			name:        "malformed weight skipped",
			input:       "source,destination,weight\nA,B,1\nB,C,heavy\nC,D,3\n",
			wantEdges:   2,
			wantSkipped: 1,
		},
		{
			name:        "too few fields skipped",
			input:       "source,destination,weight\nA,B\nA,B,2\n",
			wantEdges:   1,
			wantSkipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, skipped, err := ReadEdges(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadEdges() error = %v", err)
			}
			if len(edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(edges), tt.wantEdges)
			}
			if len(skipped) != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", len(skipped), tt.wantSkipped)
			}
		})
	}
}

func TestReadEdgesValues(t *testing.T) {
	edges, _, err := ReadEdges(strings.NewReader("src,dst,w\n A , B , 1.5\n"))
	if err != nil {
		t.Fatalf("ReadEdges() error = %v", err)
	}
	want := Edge{From: "A", To: "B", Weight: 1.5}
	if len(edges) != 1 || edges[0] != want {
		t.Errorf("edges = %v, want [%v]", edges, want)
	}
}

func TestRecordErrorMessage(t *testing.T) {
	e := RecordError{Line: 3, Record: "B,C,heavy", Reason: `weight "heavy" is not a number`}
	if !strings.Contains(e.Error(), "line 3") {
		t.Errorf("Error() = %q, want line number included", e.Error())
	}
}
