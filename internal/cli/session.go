package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/infra/configfinder"
	"github.com/aalvaropc/pesel/internal/infra/logger"
	"github.com/aalvaropc/pesel/internal/infra/translit"
	"github.com/aalvaropc/pesel/internal/usecase"
)

// session is the per-invocation wiring: resolved config, logger and decoder.
type session struct {
	cfg     domain.Config
	cfgPath string
	log     *slog.Logger
	decoder *usecase.DecodePESEL
	cleanup func() error
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, cfgPath, err := configfinder.Resolve(configfinder.NewFinder(), opts.configPath, wd)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, &cfg)

	if f := cfg.Output.Format; f != domain.FormatPretty && f != domain.FormatJSON {
		return nil, fmt.Errorf("unsupported format %q (expected pretty|json)", f)
	}

	cleanup, _ := logger.Setup(logger.Config{
		Path:  cfg.Log.File,
		Debug: cfg.Log.Debug,
	})
	if cleanup == nil {
		cleanup = func() error { return nil }
	}

	log := logger.L()
	if logger.IsReady() == nil {
		log.Debug("session.opened",
			"config", cfgPath,
			"log_path", logger.Path(),
			"log_since", logger.InitTime(),
		)
	}

	return &session{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		decoder: usecase.NewDecodePESEL(
			usecase.WithLogger(log),
			usecase.WithMasking(cfg.Masking.Enabled),
		),
		cleanup: cleanup,
	}, nil
}

func (s *session) close() {
	_ = s.cleanup()
}

// label returns the sex label, folded to ASCII when configured.
func (s *session) label(sex domain.Sex) string {
	return sexLabel(sex, s.cfg.Output.ASCII)
}

func sexLabel(sex domain.Sex, ascii bool) string {
	l := sex.Label()
	if ascii {
		l = translit.ASCII(l)
	}
	return l
}

// applyFlags overrides file/default settings with flags the user actually set.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *domain.Config) {
	if flagChanged(cmd, "format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if flagChanged(cmd, "ascii") {
		cfg.Output.ASCII = opts.ascii
	}
	if flagChanged(cmd, "log-file") {
		cfg.Log.File = opts.logFile
	}
	if flagChanged(cmd, "debug") {
		cfg.Log.Debug = opts.debug
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	return f != nil && f.Changed
}
