package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptstack/promptsite/internal/scaffold"
)

func newInitCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new prompt site in the current directory",
		Long: `Creates a starter site: configuration file, example CSV data, and the
default stylesheet and scripts. Existing files are never overwritten.

Examples:
  promptsite init              # Initialize in the current directory
  promptsite init --dir ./site # Initialize in ./site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scaffold.Init(dir, getLogger())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to initialize (defaults to the current directory)")

	return cmd
}
