// Package matching defines the public pair type and sentinel errors.
package matching

import "errors"

// ErrNilGraph indicates a nil *pairgraph.Graph passed to MinWeight.
var ErrNilGraph = errors.New("matching: graph is nil")

// Pair is one matched edge, reported with the smaller vertex id first.
type Pair struct {
	U, V int
}
