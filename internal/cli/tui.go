package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/ui/tui"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Decode PESEL numbers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer sess.close()

			return tui.Run(tui.Deps{
				Decoder: sess.decoder,
				Label:   func(s domain.Sex) string { return sess.label(s) },
				Logger:  sess.log,
				Debug:   sess.cfg.Log.Debug,
			})
		},
	}
}
