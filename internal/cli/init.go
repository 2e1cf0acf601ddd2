package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pesel/internal/infra/configinit"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pesel.yaml with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := configinit.NewInitializer().Init(dir, force)
			if err != nil {
				return err
			}
			if !created {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "path", ".", "Directory to write pesel.yaml into")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing pesel.yaml")
	return cmd
}
