// Package matching computes an exact minimum-weight matching of maximum
// cardinality on a candidate-opponent graph.
//
// What & Why
//
//   - What is a matching?
//     Given an undirected weighted graph G = (V, E), a matching is a set of
//     edges without shared endpoints. MinWeight returns, among all matchings
//     of maximum cardinality, one whose total weight is minimal.
//
//   - Why the pairing engine needs it:
//     Swiss pairing must pair every eligible competitor in a cohort while
//     penalizing deviation from the top-half/bottom-half convention. Whether
//     a cohort can be fully paired at all is exactly the question "does the
//     candidate graph admit a perfect matching", and the quality of the
//     pairing is the matching's weight. A greedy heuristic can both miss
//     feasible perfect matchings and return non-minimal ones, so the exact
//     algorithm is a hard requirement, not an optimization.
//
// Algorithm
//
// MinWeight reduces minimization to maximization by replacing every weight w
// with (maxWeight + 1 − w), then runs Edmonds' blossom algorithm with dual
// variables in Galil's formulation, prioritizing cardinality. The
// implementation follows the classic endpoint-array scheme: vertices carry
// S/T labels, tight edges grow alternating trees, odd cycles collapse into
// blossoms that later expand, and dual adjustments (the four delta cases)
// drive progress. Edge weights are doubled internally so every dual value
// and slack stays integral; results are unaffected.
//
// Complexity:
//
//   - Time:  O(V³) — at most V augmentation stages, each O(V·E) with the
//     delta bookkeeping used here. Cohort graphs are small; this is far
//     below any practical budget.
//   - Space: O(V + E).
//
// Determinism: vertices are indexed in ascending id order and edges are
// scanned in the graph's insertion order, so equal-weight alternatives
// resolve the same way on every run.
package matching
