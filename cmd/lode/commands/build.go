package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.trai.ch/lode/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build [modules...]",
		Short: "Build servable output for the given modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			responses, err := c.app.Build(cmd.Context(), args, requestContext(cmd))
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
				if err != nil {
					return err
				}
				defer f.Close() //nolint:errcheck // Best effort close on the happy path
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(responses)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the build output to a file instead of stdout")

	return cmd
}
