// Package commands implements the viewdump command tree.
package commands

import (
	"github.com/rawbytedev/bufview/internal/config"
	"github.com/rawbytedev/bufview/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "viewdump",
		Short: "Inspect bytes through typed buffer views",
		Long: `viewdump loads bytes from a file, stdin, a hex string or text into a
byte view and prints the remaining window as bytes, int16 or float32
values in either byte order.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.viewdump.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDumpCommand(a),
		newPackCommand(a),
		newUnpackCommand(a),
		newProfileCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return err
	}
	a.cfg = cfg
	logging.Debugf("config loaded: %+v", *cfg)
	return nil
}
