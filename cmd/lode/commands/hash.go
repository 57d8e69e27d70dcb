package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [modules...]",
		Short: "Print version hashes without building output",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			hashes, err := c.app.Version(cmd.Context(), args, requestContext(cmd))
			if err != nil {
				return err
			}

			names := make([]string, 0, len(hashes))
			for name := range hashes {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, hashes[name])
			}
			return nil
		},
	}
}
