package commands

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the dependency catalog and install state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			entries, err := c.app.List(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				kind := color.Gray.Sprintf("%-9s", "optional")
				if e.Dependency.Required {
					kind = color.Bold.Sprintf("%-9s", "required")
				}

				source := color.Yellow.Sprint("missing")
				if e.SourcePresent {
					source = color.Green.Sprint("present")
				}

				line := fmt.Sprintf("%s %s source:%s", color.Cyan.Sprintf("%-10s", e.Dependency.Name), kind, source)
				if e.Installed != nil {
					line += " installed:" + color.Green.Sprint(e.Installed.InstalledAt.Local().Format("2006-01-02 15:04"))
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
