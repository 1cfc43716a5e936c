package commands

import (
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/internal/logging"
	"github.com/spf13/cobra"
)

type profileOptions struct {
	memProfile string
	iterations int
	size       int
	listen     string
	hold       time.Duration
}

func newProfileCommand(a *app) *cobra.Command {
	var o profileOptions
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Run a view and pack workload and write a heap profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.iterations < 1 || o.size < 4 {
				return errors.New("--iterations must be positive and --size at least 4")
			}
			if o.listen != "" {
				go func() {
					logging.Warnf("pprof server: %v", http.ListenAndServe(o.listen, nil))
				}()
			}
			f, err := os.Create(o.memProfile)
			if err != nil {
				return err
			}
			defer f.Close()

			prev := runtime.MemProfileRate
			runtime.MemProfileRate = 1
			defer func() { runtime.MemProfileRate = prev }()

			codec, err := newCodec(a.cfg)
			if err != nil {
				return err
			}
			defer codec.Close()

			start := time.Now()
			for i := 0; i < o.iterations; i++ {
				if err := roundTrip(codec, o.size, a.cfg.ByteOrder()); err != nil {
					return fmt.Errorf("iteration %d: %w", i, err)
				}
			}
			elapsed := time.Since(start)
			if err := pprof.WriteHeapProfile(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d iterations of %d bytes in %s, heap profile in %s\n",
				o.iterations, o.size, elapsed, o.memProfile)

			if o.hold > 0 {
				time.Sleep(o.hold)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.memProfile, "memprofile", "mem.prof", "heap profile output path")
	fl.IntVar(&o.iterations, "iterations", 10000, "workload iterations")
	fl.IntVar(&o.size, "size", 4096, "bytes per view")
	fl.StringVar(&o.listen, "listen", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	fl.DurationVar(&o.hold, "hold", 0, "keep the process alive after the run")
	return cmd
}

type packer interface {
	Pack(*bufview.ByteView) (*bufview.ByteView, error)
	Unpack(*bufview.ByteView) (*bufview.ByteView, error)
}

// roundTrip fills a view with floats and checks that a derived view and a
// packed copy read back the same values.
func roundTrip(codec packer, size int, order bufview.ByteOrder) error {
	v, err := bufview.Allocate(size)
	if err != nil {
		return err
	}
	v.SetOrder(order)
	for x := float32(0); v.Remaining() >= 4; x += 0.5 {
		if err := v.PutFloat32(x); err != nil {
			return err
		}
	}
	v.Flip()

	frame, err := codec.Pack(v.Duplicate())
	if err != nil {
		return err
	}
	back, err := codec.Unpack(frame)
	if err != nil {
		return err
	}

	want := bufview.DeriveReadOnly[float32](v)
	got := back.SetOrder(order).AsFloat32View()
	if want.Capacity() != got.Capacity() {
		return fmt.Errorf("capacity %d after round trip, want %d", got.Capacity(), want.Capacity())
	}
	for want.HasRemaining() {
		x, _ := want.Get()
		y, err := got.Get()
		if err != nil {
			return err
		}
		if x != y {
			return fmt.Errorf("value %v after round trip, want %v", y, x)
		}
	}
	return nil
}
