package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the persistent cache and dependency stores",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return os.RemoveAll(domain.DefaultStatePath())
		},
	}
}
