package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediaorg/internal/config"
	"mediaorg/internal/media"
	"mediaorg/internal/organizer"
)

type organizeOptions struct {
	source      string
	destination string
	whatIf      bool
	yes         bool
	json        bool
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var opts organizeOptions

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move photos and videos into a dated library",
		Long: "Scan the source tree for photos and videos and move each one to\n" +
			"{destination}/{YYYY}/{YYYY}_{MM}/{YYYY}_{MM}_{DD}_{folders}_{name}{ext}.\n" +
			"Use --what-if to preview without moving anything.\n\n" +
			"Photos: " + strings.Join(media.Extensions(media.CategoryImage), " ") + "\n" +
			"Videos: " + strings.Join(media.Extensions(media.CategoryVideo), " "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runOrganize(cmd, ctx, *cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source directory to scan for photos and videos")
	cmd.Flags().StringVarP(&opts.destination, "destination", "d", "", "Destination directory for the organized library")
	cmd.Flags().BoolVarP(&opts.whatIf, "what-if", "w", false, "Show what would be moved without changing anything")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Move without asking for confirmation")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the run report as JSON")
	return cmd
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, settings config.Config, opts organizeOptions) error {
	if err := applyPathFlags(&settings, opts); err != nil {
		return err
	}
	settings.Organize.DryRun = settings.Organize.DryRun || opts.whatIf
	settings.Organize.AssumeYes = settings.Organize.AssumeYes || opts.yes

	p := newPrompter(cmd)
	source, err := p.sourceDir(settings.Paths.Source)
	if err != nil {
		return err
	}
	destination, err := p.destinationDir(settings.Paths.Destination)
	if err != nil {
		return err
	}
	settings.Paths.Source = source
	settings.Paths.Destination = destination
	if err := settings.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colors := newPalette(out)
	if !opts.json {
		renderBanner(out, colors, source, destination, settings.Organize.DryRun)
	}

	if !settings.Organize.DryRun && !settings.Organize.AssumeYes {
		proceed, err := p.confirm("This will MOVE files. Are you sure you want to proceed? (yes/no): ")
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	defer ctx.close()
	org, err := organizer.NewOrganizer(&settings, logger)
	if err != nil {
		return err
	}
	observer := &consoleObserver{
		out:         out,
		progressOut: cmd.ErrOrStderr(),
		colors:      colors,
		source:      source,
		destination: destination,
		useBar:      !settings.Organize.DryRun && isTerminal(cmd.ErrOrStderr()),
		quiet:       opts.json,
	}
	org.SetObserver(observer)

	report, runErr := org.Run(cmd.Context(), organizer.RequestFromConfig(&settings))
	observer.finish()

	if runErr != nil && !report.Cancelled {
		return runErr
	}
	if opts.json {
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
	} else {
		renderSummary(out, colors, report)
	}
	if runErr != nil {
		return runErr
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", report.Failed)
	}
	return nil
}

func applyPathFlags(settings *config.Config, opts organizeOptions) error {
	if value := strings.TrimSpace(opts.source); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return fmt.Errorf("resolve --source: %w", err)
		}
		settings.Paths.Source = expanded
	}
	if value := strings.TrimSpace(opts.destination); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return fmt.Errorf("resolve --destination: %w", err)
		}
		settings.Paths.Destination = expanded
	}
	return nil
}
