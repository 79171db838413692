package matching_test

import (
	"fmt"

	"github.com/fenceworks/piste/matching"
	"github.com/fenceworks/piste/pairgraph"
)

// ExampleMinWeight pairs four seeds so that the two halves of the field
// meet, which is the classic first-round pattern.
func ExampleMinWeight() {
	g := pairgraph.NewGraph()
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 0)
	g.AddEdge(0, 3, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 0)
	g.AddEdge(2, 3, 1)

	pairs, err := matching.MinWeight(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%d vs %d\n", p.U, p.V)
	}

	// Output:
	// 0 vs 2
	// 1 vs 3
}
