// Package textutil provides small text helpers shared by the planner and the
// CLI: path segment sanitization for generated file names and a generic
// conditional.
package textutil
