package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/internal/config"
	"github.com/rawbytedev/bufview/pkg/packed"
	"github.com/spf13/cobra"
)

func newCodec(cfg *config.Config) (*packed.Codec, error) {
	level, err := packed.ParseLevel(cfg.Packed.Level)
	if err != nil {
		return nil, err
	}
	return packed.NewCodec(packed.WithLevel(level), packed.WithMaxSize(cfg.Packed.MaxSize))
}

// writeView writes the [position, limit) window of v to path, or to out
// when path is empty.
func writeView(out io.Writer, path string, v *bufview.ByteView) error {
	b := bufview.Unwrap(v.Slice())
	if path == "" {
		_, err := out.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func newPackCommand(a *app) *cobra.Command {
	var (
		src    source
		output string
	)
	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Compress a byte window into a packed frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			codec, err := newCodec(a.cfg)
			if err != nil {
				return err
			}
			defer codec.Close()

			n := v.Remaining()
			frame, err := codec.Pack(v)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "packed %d bytes into %d\n", n, frame.Remaining())
			return writeView(cmd.OutOrStdout(), output, frame)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&output, "out", "", "write the frame to a file instead of stdout")
	return cmd
}

func newUnpackCommand(a *app) *cobra.Command {
	var (
		src    source
		output string
	)
	cmd := &cobra.Command{
		Use:   "unpack [file]",
		Short: "Decompress a packed frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			codec, err := newCodec(a.cfg)
			if err != nil {
				return err
			}
			defer codec.Close()

			raw, err := codec.Unpack(v)
			if err != nil {
				return err
			}
			return writeView(cmd.OutOrStdout(), output, raw)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&output, "out", "", "write the raw bytes to a file instead of stdout")
	return cmd
}
