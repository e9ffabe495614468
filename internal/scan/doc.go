// Package scan enumerates media candidates under a source root.
//
// Walk returns allowlisted files in lexical order together with the directory
// each one sits in relative to the root, which the placement planner turns
// into a filename prefix. Files outside the allowlist are counted, not
// returned, and unreadable entries are recorded without aborting the walk.
package scan
