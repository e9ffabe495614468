// Package media classifies candidate files by extension and carries the
// immutable per-file attributes (path, base name, extension, category) that the
// dating and placement packages consume.
//
// Extension matching is case-insensitive; the original extension case is kept
// on the File so destination names preserve it.
package media
