// Command kicktrack writes one minute of kick drums at 120 BPM to
// kick_drum.wav. Flags override the defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arl/kick"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	p := kick.DefaultParams()

	fs := flag.NewFlagSet("kicktrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&p.Output, "o", p.Output, "wave file to write")
	fs.Float64Var(&p.Duration, "duration", p.Duration, "track length in seconds")
	fs.Float64Var(&p.BPM, "bpm", p.BPM, "beats per minute")
	fs.IntVar(&p.SampleRate, "rate", p.SampleRate, "sample rate in Hz")
	fs.Float64Var(&p.KickDuration, "kick", p.KickDuration, "kick length in seconds")
	fs.Float64Var(&p.F0, "f0", p.F0, "kick start frequency in Hz")
	fs.Float64Var(&p.F1, "f1", p.F1, "kick end frequency in Hz")
	fs.Float64Var(&p.Decay, "decay", p.Decay, "kick decay time constant in seconds")
	verbose := fs.Bool("v", false, "log each stage")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)
	defer logger.Sync()

	if err := p.Validate(); err != nil {
		logger.Error("bad flags", zap.Error(err))
		return err
	}

	if _, err := kick.Run(p, logger); err != nil {
		logger.Error("failed to generate track", zap.Error(err))
		return err
	}

	fmt.Fprintf(stdout, "Generated %s\n", p.Output)
	return nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}
