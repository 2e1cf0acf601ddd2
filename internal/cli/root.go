package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		// Validation errors carry the exact user-facing message.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool
	ascii      bool

	format string
	query  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pesel [PESEL]",
		Short: "Validate a PESEL and decode sex and date of birth",
		Long: "Validate a Polish PESEL number and print the encoded sex and date of birth.\n" +
			"Without an argument, one line is read from standard input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: nearest pesel.yaml, if any)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug-level logging")
	cmd.PersistentFlags().BoolVar(&opts.ascii, "ascii", false, "Print labels without Polish diacritics")

	cmd.Flags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Print only the value selected by this JSONPath (e.g. $.date_of_birth)")

	cmd.AddCommand(versionCmd(), initCmd(), tuiCmd(opts))
	return cmd
}
