package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mediaorg/internal/config"
	"mediaorg/internal/dating"
	"mediaorg/internal/logging"
	"mediaorg/internal/media"
	"mediaorg/internal/placement"
	"mediaorg/internal/preflight"
	"mediaorg/internal/scan"
)

// DateResolver produces the taken date of a media file.
type DateResolver interface {
	Resolve(file media.File) (dating.Resolved, error)
}

// Request describes one run.
type Request struct {
	Source       string
	Destination  string
	DryRun       bool
	IgnoreHidden bool
}

// RequestFromConfig builds a Request from resolved configuration.
func RequestFromConfig(cfg *config.Config) Request {
	return Request{
		Source:       cfg.Paths.Source,
		Destination:  cfg.Paths.Destination,
		DryRun:       cfg.Organize.DryRun,
		IgnoreHidden: cfg.Organize.IgnoreHidden,
	}
}

// Organizer resolves, plans, and relocates media files.
type Organizer struct {
	resolver DateResolver
	executor Executor
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrganizer constructs an organizer using the EXIF and filesystem readers
// selected by cfg.
func NewOrganizer(cfg *config.Config, logger *slog.Logger) (*Organizer, error) {
	policy, err := dating.ParseCreatedPolicy(cfg.Organize.CreatedTime)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "config", "created_time", "", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, Wrap(ErrConfiguration, "config", "timezone", "", err)
	}
	resolver := dating.NewResolver(policy)
	resolver.Location = loc
	return NewOrganizerWithDependencies(resolver, nil, nil, logger), nil
}

// NewOrganizerWithDependencies allows injecting collaborators (used in tests).
// A nil executor selects MoveExecutor or DryRunExecutor per request.
func NewOrganizerWithDependencies(resolver DateResolver, executor Executor, observer Observer, logger *slog.Logger) *Organizer {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Organizer{
		resolver: resolver,
		executor: executor,
		observer: observer,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		now:      time.Now,
	}
}

// SetObserver replaces the progress observer.
func (o *Organizer) SetObserver(observer Observer) {
	if observer == nil {
		observer = nopObserver{}
	}
	o.observer = observer
}

// Run performs one pass. The returned Report is populated even when err is
// non-nil, as long as the run got past preflight. Per-file failures are never
// returned as err; inspect Report.Failed.
func (o *Organizer) Run(ctx context.Context, req Request) (Report, error) {
	source, err := filepath.Abs(req.Source)
	if err != nil {
		return Report{}, Wrap(ErrValidation, "preflight", "source", req.Source, err)
	}
	destination, err := filepath.Abs(req.Destination)
	if err != nil {
		return Report{}, Wrap(ErrValidation, "preflight", "destination", req.Destination, err)
	}

	report := Report{
		RunID:       uuid.NewString(),
		Source:      source,
		Destination: destination,
		DryRun:      req.DryRun,
		Started:     o.now(),
	}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.WithContext(ctx, o.logger)

	if err := preflight.FirstFailure(preflight.RunAll(source, destination)); err != nil {
		return report, Wrap(ErrValidation, "preflight", "", "", err)
	}

	executor := o.executor
	exists := placement.Exists(placement.OnDisk)
	var reservations *placement.Reservations
	if req.DryRun {
		reservations = placement.NewReservations(placement.OnDisk)
		exists = reservations.Exists
		if executor == nil {
			executor = &DryRunExecutor{}
		}
	} else {
		if err := os.MkdirAll(destination, 0o755); err != nil {
			return report, Wrap(ErrValidation, "preflight", "create destination", destination, err)
		}
		lock, err := acquireLock(destination)
		if err != nil {
			return report, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release destination lock", logging.Error(err))
			}
		}()
		if executor == nil {
			executor = MoveExecutor{}
		}
	}

	logger.Info("organize started",
		logging.String("source", source),
		logging.String(logging.FieldDestination, destination),
		logging.Bool("dry_run", req.DryRun),
	)

	candidates, stats, err := scan.Walk(source, scan.Options{
		IgnoreHidden: req.IgnoreHidden,
		Exclude:      []string{destination},
		Logger:       o.logger,
	})
	if err != nil {
		return report, Wrap(ErrValidation, "scan", "walk", "", err)
	}
	report.SkippedByFilter = stats.SkippedByFilter
	for _, entryErr := range stats.Errors {
		report.record(Item{Source: entryErr.Path, Status: StatusFailed, Error: entryErr.Err.Error()})
	}

	o.observer.RunStarted(len(candidates))
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			report.Cancelled = true
			report.Finished = o.now()
			logger.Warn("organize cancelled",
				logging.Int("processed", report.Processed),
				logging.Int("remaining", len(candidates)-i),
			)
			return report, fmt.Errorf("organize cancelled: %w", err)
		}

		o.observer.FileStarted(candidate.File.Path)
		item := o.processFile(logging.WithFile(ctx, candidate.File.Path), executor, candidate, destination, exists, req.DryRun)
		if reservations != nil && item.Status != StatusFailed {
			reservations.Reserve(item.Destination)
		}
		report.record(item)
		o.observer.FileFinished(item)
	}

	report.Finished = o.now()
	logger.Info("organize finished",
		logging.Int("processed", report.Processed),
		logging.Int("skipped_by_filter", report.SkippedByFilter),
		logging.Int("failed", report.Failed),
		logging.Int("examined", report.Examined()),
		logging.Duration("duration", report.Duration()),
	)
	return report, nil
}

func (o *Organizer) processFile(ctx context.Context, executor Executor, candidate scan.Candidate, destination string, exists placement.Exists, dryRun bool) Item {
	logger := logging.WithContext(ctx, o.logger)
	file := candidate.File
	item := Item{Source: file.Path, Size: candidate.Size}

	resolved, err := o.resolver.Resolve(file)
	if err != nil {
		item.Status = StatusFailed
		item.Error = err.Error()
		logging.WarnWithContext(logger, "date unavailable; file skipped", "date_unavailable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check file permissions and timestamps"),
		)
		return item
	}
	item.Date = resolved.Time
	item.DateSource = resolved.Source

	plan := placement.PlanFile(file, resolved.Time, candidate.RelDir, destination, exists)
	item.Destination = plan.Path()

	op := Operation{Source: file.Path, Plan: plan, Size: candidate.Size}
	if err := executor.Execute(ctx, op); err != nil {
		item.Status = StatusFailed
		item.Error = err.Error()
		logging.WarnWithContext(logger, "file not moved", "move_failed",
			logging.String(logging.FieldDestination, item.Destination),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check destination permissions and free space"),
		)
		return item
	}

	item.Status = StatusMoved
	if dryRun {
		item.Status = StatusPlanned
	}
	logger.Debug("file organized",
		logging.String(logging.FieldDestination, item.Destination),
		logging.String(logging.FieldDateSource, string(item.DateSource)),
		logging.Time("date", item.Date),
		logging.String("status", string(item.Status)),
	)
	return item
}
