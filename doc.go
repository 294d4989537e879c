// SPDX-License-Identifier: MIT

// Package rcv implements an instant-runoff (ranked-choice) tally engine.
//
// Ballots are ranked sequences of candidate preferences, optionally
// terminated by a special marker signalling withheld consent or
// abstention. The engine stores ballots in a prefix trie so that
// identical ranking prefixes share storage, and so that eliminating a
// candidate transfers exactly the sub-tries rooted at that candidate's
// incoming edges to the surviving preferences below them, without
// rescanning any ballot.
//
// Each round the engine checks for a strict majority of effective
// votes, and if none exists, eliminates the weakest candidate(s) under
// one of four pluggable strategies (EliminateAll, DowdallScoring,
// RankedPairs, CondorcetRankedPairs) and transfers their ballots to
// the next surviving preference.
//
// The package is single-threaded and synchronous: a Trie, once built,
// is read-only for the duration of DetermineWinner, and round-scoped
// bookkeeping (vote counts, the frontier map) is allocated fresh on
// every call and discarded when it returns.
package rcv
