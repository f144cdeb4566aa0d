// Package commands implements the CLI commands for depbuild.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/depbuild/internal/app"
	"go.trai.ch/depbuild/internal/build"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/engine/driver"
)

// RootEnv provides the default for the --root flag.
const RootEnv = "DEPBUILD_ROOT"

// CLI represents the command line interface for depbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, pkg string, opts app.RunOptions) error
	List(root string) ([]app.CatalogEntry, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "depbuild [--cleanup] <package>",
		Short:         "Configure, build and install third-party CMake dependencies",
		Long:          "Builds a single catalog dependency, or every dependency with \"all\".",
		ValidArgs:     append([]string{domain.AllPackages}, driver.Names()...),
		Args:          validatePackage,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runBuild,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Bool("cleanup", false, "Remove each build directory after a successful install")
	rootCmd.Flags().Bool("keep-going", false, "Continue past failed optional dependencies when building all")
	rootCmd.PersistentFlags().String("root", defaultRoot(), "Project root containing third_party/ (env "+RootEnv+")")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	cleanup, _ := cmd.Flags().GetBool("cleanup")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	root, _ := cmd.Flags().GetString("root")

	return c.app.Run(cmd.Context(), args[0], app.RunOptions{
		Root:      root,
		Cleanup:   cleanup,
		KeepGoing: keepGoing,
	})
}

// validatePackage accepts exactly one argument naming "all" or a catalog entry.
// Rejected input prints usage to the error stream.
func validatePackage(cmd *cobra.Command, args []string) error {
	if err := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
		cmd.PrintErr(cmd.UsageString())
		return err
	}
	return nil
}

func defaultRoot() string {
	if root, ok := os.LookupEnv(RootEnv); ok && root != "" {
		return root
	}
	return "."
}
