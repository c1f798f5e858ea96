// Package preview implements the development preview server: it maps
// request paths to description files, renders them on every request,
// and pushes live-reload messages to connected browsers when files
// under the root change.
package preview
