// SPDX-License-Identifier: MIT

// Package game runs one round of the border-path puzzle: the player is given
// two endpoints and names the entities that connect them.
//
// A Session is a small state machine:
//
//	Inactive ──Start──▶ Active ──win──▶ Won
//	                      │
//	                      └──Reveal──▶ Ended
//
// Start is accepted from any phase and End returns to Inactive from any
// phase. Won and Ended are display states: nothing leaves them on its own.
//
// Guess evaluation, in priority order:
//
//  1. text the Resolver cannot map          → Invalid
//  2. node already guessed (right or wrong) → AlreadyGuessed
//  3. node on at least one possible path    → Correct; the possible set is
//     narrowed to the paths containing it, then the session is Won as soon as
//     any remaining path has every interior node guessed
//  4. anything else                         → Wrong; no narrowing
//
// Narrowing is permanent: a path dropped by one correct guess never comes
// back, so the possible set only shrinks during a round.
//
// Projections (FoundCount, TotalToFind, CompletedPath, DisplayOrder) are
// recomputed on every call from the stored state.
//
// A Session is not safe for concurrent use. Hooks run after the mutating call
// has finished updating state and must not call back into Start, Guess,
// Reveal or End.
package game
