package commands

import (
	"fmt"
	"runtime"

	"github.com/rawbytedev/bufview"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewdump v%s (%s, native order %s)\n",
				version, runtime.Version(), bufview.NativeOrder())
		},
	}
}
