// Package pairgraph_test exercises the candidate-opponent graph container.
package pairgraph_test

import (
	"errors"
	"testing"

	"github.com/fenceworks/piste/pairgraph"
)

func TestAddEdge_Basics(t *testing.T) {
	g := pairgraph.NewGraph()
	if err := g.AddEdge(3, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 0); err != nil {
		t.Fatal(err)
	}

	if got, want := g.VertexCount(), 3; got != want {
		t.Errorf("VertexCount = %d; want %d", got, want)
	}
	if got, want := g.EdgeCount(), 2; got != want {
		t.Errorf("EdgeCount = %d; want %d", got, want)
	}
	// Undirected: both directions resolve.
	if !g.HasEdge(1, 3) || !g.HasEdge(3, 1) {
		t.Error("expected undirected edge 1–3")
	}
	if w, ok := g.Weight(2, 1); !ok || w != 0 {
		t.Errorf("Weight(2,1) = %d,%v; want 0,true", w, ok)
	}
}

func TestAddEdge_Rejections(t *testing.T) {
	g := pairgraph.NewGraph()

	if err := g.AddEdge(4, 4, 1); !errors.Is(err, pairgraph.ErrLoopNotAllowed) {
		t.Errorf("self-loop: got %v; want ErrLoopNotAllowed", err)
	}
	if err := g.AddEdge(1, 2, -1); !errors.Is(err, pairgraph.ErrNegativeWeight) {
		t.Errorf("negative weight: got %v; want ErrNegativeWeight", err)
	}
	if err := g.AddEdge(1, 2, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(2, 1, 7); !errors.Is(err, pairgraph.ErrDuplicateEdge) {
		t.Errorf("parallel edge: got %v; want ErrDuplicateEdge", err)
	}
	// The rejected parallel edge did not overwrite the weight.
	if w, _ := g.Weight(1, 2); w != 5 {
		t.Errorf("Weight(1,2) = %d; want 5", w)
	}
}

func TestDeterministicEnumeration(t *testing.T) {
	g := pairgraph.NewGraph()
	g.AddVertex(9)
	if err := g.AddEdge(5, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(2, 7, 3); err != nil {
		t.Fatal(err)
	}

	wantVertices := []int{2, 5, 7, 9}
	gotVertices := g.Vertices()
	if len(gotVertices) != len(wantVertices) {
		t.Fatalf("Vertices = %v; want %v", gotVertices, wantVertices)
	}
	for i, id := range wantVertices {
		if gotVertices[i] != id {
			t.Fatalf("Vertices = %v; want %v", gotVertices, wantVertices)
		}
	}

	// Edges keep insertion order with endpoints normalized smaller-first.
	edges := g.Edges()
	if edges[0] != (pairgraph.Edge{U: 2, V: 5, Weight: 1}) ||
		edges[1] != (pairgraph.Edge{U: 2, V: 7, Weight: 3}) {
		t.Fatalf("unexpected edge enumeration: %v", edges)
	}

	// The returned slice is a copy; mutating it leaves the graph intact.
	edges[0].Weight = 99
	if w, _ := g.Weight(2, 5); w != 1 {
		t.Errorf("graph mutated through Edges() copy: weight = %d", w)
	}
}

func TestIsolatedVertex(t *testing.T) {
	g := pairgraph.NewGraph()
	g.AddVertex(1)
	g.AddVertex(1) // idempotent

	if !g.HasVertex(1) {
		t.Error("expected vertex 1")
	}
	if g.HasEdge(1, 1) || g.EdgeCount() != 0 {
		t.Error("isolated vertex must not produce edges")
	}
}
