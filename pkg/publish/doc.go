// Package publish renders a tree of document descriptions and ships
// the resulting HTML to a destination: a local output directory or an
// S3 bucket. Non-description files are copied through verbatim with a
// content type derived from their extension.
package publish
