package preflight

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFailed marks a run that stopped because a readiness check did not pass.
var ErrFailed = errors.New("preflight failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every readiness check for an organize run.
func RunAll(source, destination string) []Result {
	return []Result{
		CheckSourceDir(source),
		CheckDestinationDir(destination),
		CheckDistinct(source, destination),
	}
}

// FirstFailure converts the first failing result into an error wrapping
// ErrFailed, or returns nil when every check passed.
func FirstFailure(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFailed, strings.Join(failed, "; "))
}
