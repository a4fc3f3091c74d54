// Package commands implements the CLI commands for the autoslice tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/autoslice/internal/adapters/chisel"
	"go.trai.ch/autoslice/internal/adapters/config"
	"go.trai.ch/autoslice/internal/app"
	"go.trai.ch/autoslice/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for autoslice.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "autoslice <package>",
		Short:         "Propose slice definitions from a package's file manifest",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.Flags().Bool("depends", false, "Expand to direct dependencies")
	rootCmd.Flags().Bool("full-depends", false, "Expand to the transitive dependency closure")
	rootCmd.Flags().Bool("slice", false, "Generate slice definition proposals")
	rootCmd.Flags().Bool("all", false, "Ignore the curated index and propose every package")
	rootCmd.Flags().String("release", "", "Curated index release tag (default: derived from the host)")
	rootCmd.Flags().String("policy", "", "Path to an interdependency policy file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd, args[0])
		if err != nil {
			return err
		}
		return c.app.Run(cmd.Context(), opts)
	}

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func optionsFromFlags(cmd *cobra.Command, pkg string) (app.RunOptions, error) {
	opts := app.RunOptions{Package: pkg}
	opts.Depends, _ = cmd.Flags().GetBool("depends")
	opts.FullDepends, _ = cmd.Flags().GetBool("full-depends")
	opts.Slice, _ = cmd.Flags().GetBool("slice")
	opts.All, _ = cmd.Flags().GetBool("all")
	opts.Release, _ = cmd.Flags().GetString("release")

	policyPath, _ := cmd.Flags().GetString("policy")
	policy, err := config.LoadPolicy(policyPath)
	if err != nil {
		return app.RunOptions{}, err
	}
	opts.Policy = policy

	// The curated index is keyed by release branch; derive the tag from
	// the host unless one was given. Only slicing without --all consults
	// the index, so only that mode needs the tag.
	if opts.Release == "" && opts.Slice && !opts.All {
		release, err := chisel.HostRelease()
		if err != nil {
			return app.RunOptions{}, zerr.Wrap(err, "could not derive release, pass --release")
		}
		opts.Release = release
	}

	return opts, nil
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
