// Package decode reads document descriptions from YAML or JSON files
// and hands them to the build package.
//
// The on-disk grammar mirrors the in-memory description grammar:
// scalars are atoms, sequences are sibling fragments, and mappings
// construct elements, the doctype preamble, or raw markup. See
// Description for the exact shapes.
package decode
