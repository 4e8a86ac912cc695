// Package kernel provides core domain primitives shared by every aggregate of
// the food-court core.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//
// These primitives are immutable and thread-safe. Domain entities reference each
// other only through kernel.UUID values, never through direct object links.
package kernel
