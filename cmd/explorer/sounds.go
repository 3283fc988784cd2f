package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"media_explorer/internal/config"
)

func newSoundsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sounds",
		Short: "Search and inspect Freesound sounds",
		Long: `Search and inspect Freesound sounds.

Requests carry the API key from FREESOUND_API_KEY (or sounds.api_key in the
config file). Text searches are scoped by the configured prefix term.`,
	}

	var resolve bool
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the audio archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)

			items, err := a.explorer.QuerySounds(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !resolve {
				return printJSON(cmd.OutOrStdout(), items)
			}

			sounds, err := a.explorer.ResolveSounds(ctx, items)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sounds)
		},
	}
	search.Flags().BoolVarP(&resolve, "resolve", "r", false, "fetch full metadata for every result")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show the metadata of one sound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sound, err := a.explorer.GetSound(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sound)
		},
	}

	var previewURL, out string
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Download a playable preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.sounds.FetchPreview(contextOf(cmd), previewURL)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			n, err := io.Copy(f, resp.Body)
			if err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.logger.Info("preview saved", "url", previewURL, "path", out, "bytes", n)
			return nil
		},
	}
	preview.Flags().StringVar(&previewURL, "url", config.SoundSrc, "preview url")
	preview.Flags().StringVarP(&out, "out", "o", "preview.ogg", "output file")

	cmd.AddCommand(search, get, preview)

	return cmd
}
