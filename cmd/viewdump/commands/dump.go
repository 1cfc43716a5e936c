package commands

import (
	"github.com/rawbytedev/bufview/internal/logging"
	"github.com/rawbytedev/bufview/internal/report"
	"github.com/spf13/cobra"
)

func newDumpCommand(a *app) *cobra.Command {
	var (
		src     source
		order   string
		lens    string
		columns int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print a byte window through a typed lens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("order") {
				a.cfg.View.Order = order
			}
			if f.Changed("lens") {
				a.cfg.View.Lens = lens
			}
			if f.Changed("columns") {
				a.cfg.View.Columns = columns
			}
			if f.Changed("format") {
				a.cfg.Output.Format = format
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			v, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			v.SetOrder(a.cfg.ByteOrder())
			logging.WithView(v).Debugf("dumping as %s", a.cfg.View.Lens)

			r, err := report.Build(v, a.cfg.View.Lens, a.cfg.View.Columns)
			if err != nil {
				return err
			}
			return r.Write(cmd.OutOrStdout(), a.cfg.Output.Format)
		},
	}
	src.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&order, "order", "o", "", "byte order: big, little or native")
	f.StringVarP(&lens, "lens", "l", "", "lens: byte, int16 or float32")
	f.IntVarP(&columns, "columns", "c", 0, "values per row")
	f.StringVarP(&format, "format", "f", "", "output format: table or yaml")
	return cmd
}
