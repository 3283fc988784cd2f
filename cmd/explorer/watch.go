package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"media_explorer/internal/scheduler"
	"media_explorer/internal/source/nasa"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <query>",
		Short: "Repeat an image search on the configured interval",
		Long: `Runs an image search, then repeats it every watch.interval until
interrupted. Each change of the results is printed as one line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			query := strings.Join(args, " ")

			unsubscribe := a.store.ImageItems.Subscribe(changePrinter(cmd.OutOrStdout()))
			defer unsubscribe()

			if _, err := a.explorer.SearchImages(ctx, query); err != nil {
				return err
			}

			sched := scheduler.NewScheduler(a.explorer, a.cfg.Watch.Interval, a.cfg.Watch.RunTimeout, a.logger, scheduler.WithDelayedStart())

			a.logger.Info("watching image search",
				"query", query,
				"interval", a.cfg.Watch.Interval,
			)

			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

// changePrinter returns an observer that prints one line per change of the
// results. The replayed value present before the first search is skipped, and
// so is a refresh that returns the same hrefs in the same order.
func changePrinter(w io.Writer) func([]nasa.ImageItem) {
	replayed := false
	var last []string

	return func(items []nasa.ImageItem) {
		if !replayed {
			replayed = true
			return
		}

		hrefs := make([]string, len(items))
		titles := make([]string, len(items))
		for i, item := range items {
			hrefs[i] = item.Href
			titles[i] = item.Title()
		}
		if last != nil && slices.Equal(hrefs, last) {
			return
		}
		last = hrefs

		fmt.Fprintf(w, "%d results: %s\n", len(items), strings.Join(titles, " | "))
	}
}
