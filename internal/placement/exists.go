package placement

import (
	"os"
	"path/filepath"
)

// OnDisk reports existence from the filesystem. Dangling symlinks count as
// existing entries.
func OnDisk(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Set is an in-memory destination state keyed by cleaned path.
type Set map[string]struct{}

// NewSet seeds a Set with paths.
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add records path as occupied.
func (s Set) Add(path string) {
	s[filepath.Clean(path)] = struct{}{}
}

// Exists implements the Exists predicate.
func (s Set) Exists(path string) bool {
	_, ok := s[filepath.Clean(path)]
	return ok
}

// Reservations layers names planned earlier in a run over a base predicate.
// Dry runs use it so two files that would collide are still given distinct
// names even though neither is moved.
type Reservations struct {
	base     Exists
	reserved Set
}

// NewReservations wraps base. A nil base means nothing exists on disk.
func NewReservations(base Exists) *Reservations {
	return &Reservations{base: base, reserved: Set{}}
}

// Exists implements the Exists predicate.
func (r *Reservations) Exists(path string) bool {
	if r.reserved.Exists(path) {
		return true
	}
	return r.base != nil && r.base(path)
}

// Reserve marks path as taken for the remainder of the run.
func (r *Reservations) Reserve(path string) {
	r.reserved.Add(path)
}
