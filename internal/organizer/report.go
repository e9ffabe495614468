package organizer

import (
	"time"

	"mediaorg/internal/dating"
)

// Status is the outcome of one file.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusPlanned Status = "planned"
	StatusFailed  Status = "failed"
)

// Item records what happened to one file.
type Item struct {
	Source      string        `json:"source"`
	Destination string        `json:"destination,omitempty"`
	Date        time.Time     `json:"date,omitzero"`
	DateSource  dating.Source `json:"date_source,omitempty"`
	Size        int64         `json:"size"`
	Status      Status        `json:"status"`
	Error       string        `json:"error,omitempty"`
}

// Counters are the aggregate tallies of a run.
type Counters struct {
	Processed       int   `json:"processed"`
	SkippedByFilter int   `json:"skipped_by_filter"`
	Failed          int   `json:"failed"`
	Bytes           int64 `json:"bytes"`
}

// Examined is the total number of files the run looked at.
func (c Counters) Examined() int {
	return c.Processed + c.SkippedByFilter + c.Failed
}

// Report summarizes a run.
type Report struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	DryRun      bool      `json:"dry_run"`
	Started     time.Time `json:"started"`
	Finished    time.Time `json:"finished"`
	Cancelled   bool      `json:"cancelled,omitempty"`
	Counters
	Items []Item `json:"items"`
}

// Duration is the wall time of the run.
func (r Report) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// Failures returns the failed items in processing order.
func (r Report) Failures() []Item {
	var out []Item
	for _, item := range r.Items {
		if item.Status == StatusFailed {
			out = append(out, item)
		}
	}
	return out
}

func (r *Report) record(item Item) {
	switch item.Status {
	case StatusFailed:
		r.Failed++
	default:
		r.Processed++
		r.Bytes += item.Size
	}
	r.Items = append(r.Items, item)
}
