// Package domain defines the core business entities for docdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: one file-metadata entry from a scanner catalog
//   - Catalog: the full scanner output (client name + records)
//   - Selection: the active filter dimensions and search term
//   - SortSpec: the active sort key and direction
//   - Facets: the distinct values available per filter dimension
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
