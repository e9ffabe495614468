package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"mediaorg/internal/organizer"
	"mediaorg/internal/textutil"
)

const displayTimeLayout = "2006-01-02 15:04:05"

type palette struct {
	heading *color.Color
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
}

func newPalette(w io.Writer) palette {
	p := palette{
		heading: color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(w) {
		for _, c := range []*color.Color{p.heading, p.ok, p.warn, p.fail} {
			c.DisableColor()
		}
	}
	return p
}

func renderBanner(out io.Writer, colors palette, source, destination string, dryRun bool) {
	colors.heading.Fprintln(out, "--- mediaorg ---")
	fmt.Fprintf(out, "Source:      %s\n", source)
	fmt.Fprintf(out, "Destination: %s\n", destination)
	if dryRun {
		colors.warn.Fprintln(out, "*** WHAT-IF MODE: no files will be moved ***")
	}
	fmt.Fprintln(out)
}

// consoleObserver prints one line per file, or drives a progress bar when the
// output is an interactive terminal and files are actually being moved.
type consoleObserver struct {
	out         io.Writer
	progressOut io.Writer
	colors      palette
	source      string
	destination string
	useBar      bool
	quiet       bool

	bar *progressbar.ProgressBar
}

func (o *consoleObserver) RunStarted(total int) {
	if !o.useBar || o.quiet || total == 0 {
		return
	}
	o.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(o.progressOut),
		progressbar.OptionSetDescription("Organizing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *consoleObserver) FileStarted(string) {}

func (o *consoleObserver) FileFinished(item organizer.Item) {
	if o.quiet {
		return
	}
	if o.bar != nil {
		_ = o.bar.Add(1)
		if item.Status == organizer.StatusFailed {
			_ = o.bar.Clear()
			o.colors.fail.Fprintf(o.out, "  FAILED %s: %s\n", relativeTo(o.source, item.Source), item.Error)
		}
		return
	}

	src := relativeTo(o.source, item.Source)
	switch item.Status {
	case organizer.StatusFailed:
		o.colors.fail.Fprintf(o.out, "  FAILED  %s: %s\n", src, item.Error)
	case organizer.StatusPlanned:
		fmt.Fprintf(o.out, "  WHAT-IF %s -> %s (%s, %s)\n", src, relativeTo(o.destination, item.Destination),
			item.DateSource, item.Date.Format(displayTimeLayout))
	default:
		o.colors.ok.Fprintf(o.out, "  MOVED   %s -> %s (%s, %s)\n", src, relativeTo(o.destination, item.Destination),
			item.DateSource, item.Date.Format(displayTimeLayout))
	}
}

func (o *consoleObserver) finish() {
	if o.bar != nil {
		_ = o.bar.Finish()
	}
}

func renderSummary(out io.Writer, colors palette, report organizer.Report) {
	title := textutil.Ternary(report.DryRun, "Summary (what-if)", "Summary")
	processedLabel := textutil.Ternary(report.DryRun, "Files planned", "Files processed")
	rows := [][]string{
		{processedLabel, strconv.Itoa(report.Processed)},
		{"Skipped (non-photo/video)", strconv.Itoa(report.SkippedByFilter)},
		{"Skipped due to errors", strconv.Itoa(report.Failed)},
		{"Total examined", strconv.Itoa(report.Examined())},
		{"Data", humanize.Bytes(uint64(max(report.Bytes, 0)))},
		{"Duration", report.Duration().Round(time.Millisecond).String()},
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(title, []string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))

	if failures := report.Failures(); len(failures) > 0 {
		failed := make([][]string, 0, len(failures))
		for _, item := range failures {
			failed = append(failed, []string{relativeTo(report.Source, item.Source), item.Error})
		}
		fmt.Fprintln(out, renderTable("Failed files", []string{"File", "Error"}, failed, nil))
	}

	switch {
	case report.Cancelled:
		colors.warn.Fprintln(out, "Run cancelled; remaining files were left in place.")
	case report.Failed > 0:
		colors.fail.Fprintf(out, "%d file(s) could not be organized.\n", report.Failed)
	default:
		colors.ok.Fprintln(out, "Done.")
	}
}

func relativeTo(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
