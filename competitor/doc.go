// Package competitor implements the scoring model that ranks tournament
// entrants and remembers who has already faced whom.
//
// The model is split in two layers:
//
//   - The Competitor interface is the contract the rest of the module
//     consumes: a stable integer ID, a totally ordered Score, an opponents
//     set queried through HasFaced, an exemption flag, and the three
//     mutating operations RecordMatch, AddBye and Reset.
//
//   - Player is the base implementation carrying the cumulative statistics:
//     victories, draws, touches scored and received, opponents faced, and
//     whether a bye has been granted. Fencer and Team embed Player and add
//     identity (names, birthdate, club, licence) on top.
//
// Ranking key
//
// A competitor's Score is the lexicographic triple
//
//	((victories, draws), touchesScored − touchesReceived, touchesScored)
//
// compared component by component, larger is better. The first component is
// the Record, which also defines the cohorts the pairing engine groups by.
// Score is recomputed on demand from the current statistics; there is no
// cached copy to invalidate.
//
// Identifier allocation is explicit: constructors take an IDAllocator, and
// Sequence provides the standard monotonically increasing allocator starting
// at 1. Tests construct their own Sequence to get deterministic ids.
//
// All operations are synchronous and assume serialized access; see the
// module documentation for the concurrency contract.
package competitor
