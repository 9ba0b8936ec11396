package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-badges/internal/render"
	"github.com/naka-gawa/github-badges/internal/usecase"
)

var renderCmd = &cobra.Command{
	Use:       "render [stats|langs|contrib|snake]",
	Short:     "Renders a single badge to a file or standard output",
	Long:      `Runs the same pipeline as the HTTP server for one badge and writes the SVG to --out, or to standard output when --out is empty or "-".`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"stats", "langs", "contrib", "snake"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := usecase.ParseKind(args[0])
		if err != nil {
			return err
		}

		user, _ := cmd.Flags().GetString("user")
		theme, _ := cmd.Flags().GetString("theme")
		out, _ := cmd.Flags().GetString("out")

		aggregator, err := newAggregator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()

		svg, err := aggregator.RenderBadge(ctx, kind, usecase.BadgeRequest{Username: user, Theme: theme})
		if err != nil {
			return fmt.Errorf("failed to render %s badge: %w", kind, err)
		}

		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(svg)
			return err
		}
		if err := os.WriteFile(out, svg, 0o644); err != nil {
			return fmt.Errorf("failed to write SVG to %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "github-badges: wrote %s badge for %q to %s\n", kind, user, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	renderCmd.MarkFlagRequired("user")
	renderCmd.Flags().StringP("theme", "t", render.DefaultTheme, "Badge theme: "+strings.Join(render.ThemeNames(), ", "))
	renderCmd.Flags().StringP("out", "o", "", "Output SVG file path (default: standard output)")
}
