//go:build !rp2040 && !rp2350

// Command gauge-sim runs the gauge loop on the host against an in-memory
// round display, either in a desktop window or headless with log output.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"gaugecode-go/services/config"
	"gaugecode-go/services/gauge"
	"gaugecode-go/x/framebuf"
	"gaugecode-go/x/logx"
)

type options struct {
	configPath string
	board      string
	headless   bool
	duration   time.Duration
	pngPath    string
	scale      float32
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "gauge-sim",
		Short: "Run the gauge display loop against a simulated panel",
		Long: `Run the gauge firmware's display loop on the host.

The loop draws into a 240x240 framebuffer that is shown in a window, or kept
off-screen with --headless. Status lines go to stdout exactly as the firmware
writes them to its UART.

Examples:
  gauge-sim
  gauge-sim --config gauge.yaml --scale 2
  gauge-sim --headless --duration 30s --png last.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file (default: compiled-in board config)")
	f.StringVar(&o.board, "board", "sim", "compiled-in board configuration to use without --config")
	f.BoolVar(&o.headless, "headless", false, "run without a window")
	f.DurationVar(&o.duration, "duration", 0, "stop after this long (0 = until interrupted)")
	f.StringVar(&o.pngPath, "png", "", "write the last frame to this PNG file on exit")
	f.Float32Var(&o.scale, "scale", 1, "window zoom factor")
	f.BoolVar(&o.debug, "debug", false, "enable debug log lines")
	return cmd
}

func loadConfig(o options) (*config.Config, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}
	cfg, ok := config.ForBoard(o.board)
	if !ok {
		return nil, fmt.Errorf("unknown board %q", o.board)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, o options) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Log.Debug = true
	}
	log := logx.New(cmd.OutOrStdout(), cfg.Log.Debug)

	fb := framebuf.New(cfg.Display.Width, cfg.Display.Height)
	svc, err := gauge.New(cfg, gauge.Options{
		Surface: gauge.NewDisplaySurface(fb),
		Log:     log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if o.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.duration)
		defer cancel()
	}

	log.Info("Multi-Sensor Display Starting...")
	if o.headless {
		err = svc.Run(ctx)
	} else {
		err = runWindow(ctx, svc, fb, o.scale)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	if o.pngPath != "" {
		if perr := writePNG(o.pngPath, fb); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

func writePNG(path string, fb *framebuf.Buffer) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()
	if err := png.Encode(out, fb.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return out.Close()
}
