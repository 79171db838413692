// Package match implements a two-sided bout and the validity state machine
// that gates recording its result into both competitors.
//
// A Match is built from two distinct competitors plus a frozen configuration:
// the score ceiling the caller promises to honor and whether draws are
// allowed. Each Side holds an optional score and an optional result, and the
// match status is recomputed after every side update:
//
//	StatusIncomplete ──▶ StatusValid ──▶ StatusLocked (terminal)
//	        │                ▲
//	        └──▶ StatusInvalid┘    (valid/invalid flip as sides change)
//
// Updating a side always overwrites its score (nil clears it), then resolves
// that side's result in priority order: the explicit argument, the complement
// of the other side's result, the score comparison when both scores are set,
// otherwise unset. Only the side being updated is recomputed — an inferred
// result on the opposite side is not refreshed until that side is itself
// updated, so the two sides can disagree transiently; the status machine
// reports such states as StatusInvalid rather than repairing them.
//
// Validity depends on the draw policy. With draws allowed every comparison is
// strict: a winner's score must exceed the loser's and drawn scores must be
// equal. With draws disallowed any DRAW result is invalid, and the score
// comparison is deliberately non-strict: equal scores still validate a WIN,
// covering tie-break decisions (priority) that the score line cannot express.
//
// Record commits a StatusValid match into both competitors through the
// scoring model and locks the match permanently. The score ceiling is not
// enforced here; whoever supplies scores is assumed to have honored it.
package match
