// Package cmd implements the orftrie command line.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xiles84/orftrie/config"
	"github.com/xiles84/orftrie/genome"
	"github.com/xiles84/orftrie/logger"
	"github.com/xiles84/orftrie/metrics"
	"github.com/xiles84/orftrie/service"
)

// app carries the flags and the state built before every subcommand.
type app struct {
	cfgPath  string
	genome   string
	engine   string
	logLevel string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "orftrie",
		Short:         "Index an A-D sequence and query substrings and motif-bounded regions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&a.genome, "genome", "f", "", "sequence file (default from config: genome.txt)")
	flags.StringVar(&a.engine, "engine", "", "index engine: trie or array")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		newSearchCmd(a),
		newFindCmd(a),
		newRepeatCmd(a),
		newStatsCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("genome") {
		cfg.Genome = a.genome
	}
	if flags.Changed("engine") {
		cfg.Engine = a.engine
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// loadService reads the configured genome and indexes it.
func (a *app) loadService() (*service.Service, error) {
	if a.cfg.Genome == "" {
		return nil, fmt.Errorf("no genome file: set --genome or genome in the config")
	}
	seq, err := genome.Load(a.cfg.Genome)
	if err != nil {
		return nil, fmt.Errorf("load genome: %w", err)
	}
	a.log.Debug().Str("file", a.cfg.Genome).Int("length", len(seq)).Msg("genome loaded")
	return service.New(seq, a.cfg, a.log, metrics.New())
}
