// Package ragged provides strongly typed containers for variable-length
// numeric elements stored in one contiguous flat buffer. List is the
// resizable variant, Tuple the fixed-cardinality (and optionally
// immutable) one; both address elements through a shared offsets table,
// so indexing and slicing return views into the same storage rather than
// copies.
package ragged
