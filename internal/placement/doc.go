// Package placement computes where a dated media file belongs in the
// destination tree and which collision-free name it receives.
//
// Planning is pure apart from the caller-supplied Exists predicate, so the
// same inputs and the same destination state always produce the same Plan.
package placement
