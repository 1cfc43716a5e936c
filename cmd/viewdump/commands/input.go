package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rawbytedev/bufview"
	"github.com/spf13/cobra"
)

// source selects where the bytes come from and which window is shown.
type source struct {
	hex      string
	text     string
	offset   int
	length   int
	readOnly bool
}

func (s *source) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.hex, "hex", "", "read bytes from a hex string (spaces allowed)")
	f.StringVar(&s.text, "text", "", "read the UTF-8 bytes of a string")
	f.IntVar(&s.offset, "offset", 0, "window start in bytes")
	f.IntVar(&s.length, "length", -1, "window length in bytes (-1 for the rest)")
	f.BoolVar(&s.readOnly, "readonly", false, "open the view read-only")
	cmd.MarkFlagsMutuallyExclusive("hex", "text")
}

// open builds a view over the selected input with its window applied.
// A file argument of "-" or no argument with no --hex/--text reads stdin.
func (s *source) open(cmd *cobra.Command, args []string) (*bufview.ByteView, error) {
	var v *bufview.ByteView
	switch {
	case s.hex != "":
		raw, err := hex.DecodeString(strings.Join(strings.Fields(s.hex), ""))
		if err != nil {
			return nil, fmt.Errorf("decoding --hex: %w", err)
		}
		v = bufview.Wrap(raw)
	case s.text != "":
		v = bufview.FromString(s.text)
	case len(args) == 0 || args[0] == "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		v = bufview.Wrap(raw)
	default:
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		v = bufview.Wrap(raw)
	}

	if s.readOnly {
		v = v.AsReadOnly()
	}
	if err := s.window(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *source) window(v *bufview.ByteView) error {
	if s.length >= 0 {
		if s.length > v.Capacity()-s.offset {
			return fmt.Errorf("--length %d: %w", s.length, bufview.ErrIndexOutOfRange)
		}
		if err := v.SetLimit(s.offset + s.length); err != nil {
			return err
		}
	} else if s.length != -1 {
		return errors.New("--length must be -1 or non-negative")
	}
	if err := v.SetPosition(s.offset); err != nil {
		return fmt.Errorf("--offset %d: %w", s.offset, err)
	}
	return nil
}
