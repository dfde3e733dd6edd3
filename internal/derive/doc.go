// Package derive computes the read-side views of a board: comment threads,
// filtered and sorted idea lists, and summary aggregates. Every function is
// pure and works on snapshots; inputs are never modified.
package derive
