// Package geo provides the geometric primitives of the TSP engine.
//
// It includes three concerns, leaf-first:
//
//   - City — an immutable 2D point (x, y). Identity is positional: two
//     cities may coincide in coordinates yet remain distinct entries.
//
//   - Distance — the Euclidean metric between two cities. Pure and
//     symmetric; the triangle inequality holds by construction.
//
//   - Registry — the fixed, ordered collection of all cities of one
//     problem instance. Built once, never mutated afterwards, and safe
//     for concurrent read access by any number of readers.
//
// The package also reads the external coordinate format: a plain-text
// stream with one city per line, two whitespace-separated real numbers
// (x then y). Malformed lines abort parsing with ErrMalformedLine.
//
// Errors (sentinel):
//
//	– ErrEmptyRegistry   if zero cities are supplied to NewRegistry.
//	– ErrIndexOutOfRange if a Registry read is out of bounds.
//	– ErrMalformedLine   if a coordinate line does not parse.
//
// Use this package to load a problem instance before handing it to
// package genetic for optimization.
package geo
