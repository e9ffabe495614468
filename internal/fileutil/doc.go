// Package fileutil holds the copy and move primitives the organizer uses to
// relocate media files without overwriting anything already in place.
package fileutil
