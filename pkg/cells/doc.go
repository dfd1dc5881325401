// Package cells is the targeting layer of the table pipeline: Location
// values describe which region of a table a style or footnote applies to,
// column and row selectors narrow the target, and Resolve turns the
// declaration into concrete coordinates against a structural snapshot.
//
// Resolution is permissive about structure (targeting a region the table
// does not have yields an empty set) and strict about expressions (a
// malformed pattern or a failing row predicate is an error at the call that
// introduced it).
package cells
