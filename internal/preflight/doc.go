// Package preflight provides readiness checks for the filesystem paths an
// organize run depends on.
//
// The organizer calls RunAll before scanning; if any check fails the run
// stops before a single file is touched. The CLI reuses the individual checks
// to explain interactive prompt rejections.
package preflight
