package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newImagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Search and inspect NASA images",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search the image archive",
			Example: `  explorer images search "crab nebula"
  explorer images search apollo 11`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := a.explorer.SearchImages(contextOf(cmd), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show the asset manifest of one image",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				asset, err := a.explorer.GetImage(contextOf(cmd), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), asset)
			},
		},
		&cobra.Command{
			Use:     "select <query> <index>",
			Short:   "Search, then select one result by its zero-based index",
			Example: `  explorer images select nebula 2`,
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("parse index %q: %w", args[1], err)
				}

				if _, err := a.explorer.SearchImages(contextOf(cmd), args[0]); err != nil {
					return err
				}

				item, err := a.explorer.SelectImageAt(index)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), item)
			},
		},
	)

	return cmd
}
