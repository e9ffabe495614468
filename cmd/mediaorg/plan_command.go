package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mediaorg/internal/config"
	"mediaorg/internal/dating"
	"mediaorg/internal/media"
	"mediaorg/internal/placement"
)

type planEntry struct {
	Source      string        `json:"source"`
	Destination string        `json:"destination,omitempty"`
	DateSource  dating.Source `json:"date_source,omitempty"`
	Date        string        `json:"date,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var (
		sourceRoot  string
		destination string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "plan FILE...",
		Short: "Show where specific files would be placed",
		Long: "Resolve the date of each FILE and print its planned destination without\n" +
			"moving anything. Folder prefixes are derived relative to --source when the\n" +
			"file lives under it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings := *cfg
			if err := applyPathFlags(&settings, organizeOptions{source: sourceRoot, destination: destination}); err != nil {
				return err
			}
			if settings.Paths.Destination == "" {
				return errDestinationRequired
			}

			entries, err := planFiles(&settings, args)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				target := e.Destination
				if e.Error != "" {
					target = "error: " + e.Error
				}
				rows = append(rows, []string{e.Source, e.Date, string(e.DateSource), target})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", []string{"File", "Date", "Date Source", "Destination"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceRoot, "source", "s", "", "Scan root used to derive folder prefixes")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination library root")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

// planFiles resolves and plans each path. Names planned earlier in the list
// are reserved so two arguments never map to the same destination.
func planFiles(cfg *config.Config, paths []string) ([]planEntry, error) {
	policy, err := dating.ParseCreatedPolicy(cfg.Organize.CreatedTime)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	resolver := dating.NewResolver(policy)
	resolver.Location = loc
	reservations := placement.NewReservations(placement.OnDisk)

	entries := make([]planEntry, 0, len(paths))
	for _, arg := range paths {
		path, err := config.ExpandPath(arg)
		if err != nil {
			entries = append(entries, planEntry{Source: arg, Error: err.Error()})
			continue
		}
		entry := planEntry{Source: path}

		file, ok := media.NewFile(path)
		if !ok {
			entry.Error = "not a supported photo or video extension"
			entries = append(entries, entry)
			continue
		}
		resolved, err := resolver.Resolve(file)
		if err != nil {
			entry.Error = err.Error()
			entries = append(entries, entry)
			continue
		}

		plan := placement.PlanFile(file, resolved.Time, relativeFolder(cfg.Paths.Source, path), cfg.Paths.Destination, reservations.Exists)
		reservations.Reserve(plan.Path())
		entry.Destination = plan.Path()
		entry.DateSource = resolved.Source
		entry.Date = resolved.Time.Format(displayTimeLayout)
		entries = append(entries, entry)
	}
	return entries, nil
}

func relativeFolder(root, path string) string {
	if root == "" {
		return ""
	}
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}
