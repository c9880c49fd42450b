//go:build !rp2040 && !rp2350

// Command joymon follows the joystick firmware's console over a serial port
// and logs decoded cursor reports.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/tarm/serial"

	"joycursor/services/hal/platform"
	"joycursor/services/monitor"
)

var (
	device  = "/dev/ttyACM0"
	baud    = platform.ConsoleBaud
	verbose = false
	raw     = false
)

func init() {
	pflag.StringVarP(&device, "device", "d", device, "serial device of the board console")
	pflag.IntVarP(&baud, "baud", "b", baud, "baud rate")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
	pflag.BoolVar(&raw, "raw", raw, "log every console line verbatim")
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	defer port.Close()

	// Closing the port unblocks the pending read.
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	logger.Info("listening", "device", device, "baud", baud)
	m := monitor.New(monitor.Config{Logger: logger, Raw: raw})
	if err := m.Run(ctx, port); err != nil {
		return fmt.Errorf("reading %s: %w", device, err)
	}

	st := m.Stats()
	logger.Info("done", "lines", st.Lines, "reports", st.Reports, "notices", st.Notices, "malformed", st.Malformed)
	return nil
}
