// Package commands implements the CLI commands for the lode asset builder.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/core/domain"
)

// CLI represents the command line interface for lode.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lode",
		Short:         "Resolve and build declarative asset modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("lang", "en", "Request language code")
	rootCmd.PersistentFlags().String("skin", domain.DefaultSkin, "Request skin name")
	rootCmd.PersistentFlags().Bool("debug", false, "Build in debug mode")
	rootCmd.PersistentFlags().Bool("rtl", false, "Build for right-to-left text direction")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// requestContext assembles the request context from the persistent flags.
func requestContext(cmd *cobra.Command) domain.Context {
	lang, _ := cmd.Flags().GetString("lang")
	skin, _ := cmd.Flags().GetString("skin")
	debug, _ := cmd.Flags().GetBool("debug")
	rtl, _ := cmd.Flags().GetBool("rtl")

	direction := domain.DirLTR
	if rtl {
		direction = domain.DirRTL
	}

	return domain.Context{
		Language:  lang,
		Skin:      skin,
		Debug:     debug,
		Direction: direction,
	}
}
