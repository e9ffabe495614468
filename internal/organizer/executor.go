package organizer

import (
	"context"
	"fmt"
	"os"

	"mediaorg/internal/fileutil"
	"mediaorg/internal/placement"
)

// Operation is one planned relocation.
type Operation struct {
	Source string
	Plan   placement.Plan
	Size   int64
}

// Destination returns the planned target path.
func (op Operation) Destination() string {
	return op.Plan.Path()
}

// Executor applies or records operations. Execute is called for one file at a
// time and must complete before the next existence check is made.
type Executor interface {
	Execute(ctx context.Context, op Operation) error
}

// MoveExecutor creates the dated directory and moves the file into it.
type MoveExecutor struct{}

func (MoveExecutor) Execute(_ context.Context, op Operation) error {
	if err := os.MkdirAll(op.Plan.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", op.Plan.Dir, err)
	}
	if err := fileutil.MoveFile(op.Source, op.Destination()); err != nil {
		return fmt.Errorf("move %s: %w", op.Source, err)
	}
	return nil
}

// DryRunExecutor records operations without touching the filesystem.
type DryRunExecutor struct {
	Operations []Operation
}

func (d *DryRunExecutor) Execute(_ context.Context, op Operation) error {
	d.Operations = append(d.Operations, op)
	return nil
}
