// Package piste runs the pairing core of a Swiss-system fencing tournament:
// competitor scoring, bout validation, and rematch-free round pairing built
// on exact minimum-weight matching.
//
// What piste gives you:
//
//	competitor/ — scoring model: Player statistics, Fencer & Team identity,
//	              the (record, indicator, touches) ranking key
//	match/      — a two-sided bout with a validity state machine that gates
//	              recording results into both competitors
//	pairgraph/  — undirected weighted candidate-opponent graph
//	matching/   — exact minimum-weight maximum matching (Edmonds blossom)
//	swiss/      — the round engine: sort, bye, group by record, match each
//	              group, merge groups when rematch exclusions bite
//
// A round over a roster flows one way:
//
//	roster → sort by score → bye → groups → candidate graphs → matching
//	       → []*match.Match → (caller records each bout) → next round
//
// Everything is synchronous and single-threaded by contract: round
// construction is a pure computation over a roster snapshot, and competitor
// statistics only change when a bout is recorded. The caller serializes
// "record all bouts" before "build the next round".
//
//	go get github.com/fenceworks/piste
package piste
