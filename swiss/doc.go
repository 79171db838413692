// Package swiss builds the pairings of one tournament round.
//
// A Round is computed once, at construction, from a rank number, the match
// configuration (score ceiling, draw policy) and the roster of competitors.
// Construction runs the full pairing pipeline:
//
//  1. Sort the roster by score, best first. The sort is stable, so
//     competitors with equal scores keep their prior relative order, and it
//     happens in place on the caller's slice.
//  2. With an odd roster, designate a bye: the lowest-ranked competitor not
//     yet exempted sits the round out. When everyone is already exempted the
//     round fails with ErrNoByeCandidate rather than pairing an odd field.
//  3. Partition the competing set into groups sharing the same win/draw
//     record, best group first. Every group but the last is evened by moving
//     its lowest-ranked member down into the next group.
//  4. Pair each group through a minimum-weight matching over the pairs that
//     have not met before. The edge weight |Δrank − n/2| steers the pairing
//     towards the Swiss convention of top half against bottom half.
//  5. When a group cannot be fully paired under the rematch exclusions, it
//     is merged into the next group and pairing retries from there; the last
//     group folds backward into the previous one instead, discarding that
//     group's matches. A single remaining group that still cannot be paired
//     aborts the whole round with ErrUnmatchable.
//
// Construction is all or nothing: on any error no matches are exposed. It
// never mutates a competitor. Statistics change only as the produced matches
// are individually recorded, and the bye competitor's exemption flag is the
// caller's to set (competitor.Player.AddBye) once the bye is honoured.
package swiss
