package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/transition"
	"github.com/gogpu/transition/internal/config"
	"github.com/gogpu/transition/internal/producer"
)

type rootOptions struct {
	workers  int
	logLevel string
	logFile  string
	ffmpeg   string
	quiet    bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "transition <image1> <image2> <config> <output> [fps]",
		Short:         "Render a transition between two images",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 4 || len(args) > 5 {
				return usageError(fmt.Errorf("expected 4 or 5 arguments, got %d", len(args)))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			closer, err := setupLogging(cmd.ErrOrStderr(), opts.logLevel, opts.logFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			p := producer.Params{
				Image1:     args[0],
				Image2:     args[1],
				ConfigPath: args[2],
				Output:     args[3],
				FPS:        transition.DefaultFPS,
				Workers:    opts.workers,
				FFmpeg:     opts.ffmpeg,
			}
			if len(args) == 5 {
				p.FPS = parseFPS(args[4])
			}
			if !opts.quiet {
				p.Summary = cmd.OutOrStdout()
				if isTerminal(os.Stderr) {
					p.Progress = cmd.ErrOrStderr()
				}
			}
			_, err = producer.New(p).Run(cmd.Context())
			return err
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&opts.workers, "workers", "j", 0, "Render workers (0 uses all CPUs)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write logs to this rotated file")
	flags.StringVar(&opts.ffmpeg, "ffmpeg", "ffmpeg", "ffmpeg executable used for video outputs")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Hide progress and the summary line")

	rootCmd.AddCommand(newListCommand())
	return rootCmd
}

// applyEnv fills every flag the user did not set from TRANSITION_*.
func (o *rootOptions) applyEnv(cmd *cobra.Command) error {
	env, err := config.LoadEnv()
	if err != nil {
		return usageError(err)
	}
	flags := cmd.Flags()
	if !flags.Changed("workers") {
		o.workers = env.Workers
	}
	if !flags.Changed("log-level") {
		o.logLevel = env.LogLevel
	}
	if !flags.Changed("log-file") {
		o.logFile = env.LogFile
	}
	if !flags.Changed("ffmpeg") {
		o.ffmpeg = env.FFmpeg
	}
	return nil
}

// parseFPS decodes the optional positional frame rate. Anything that is
// not a positive number falls back to the default.
func parseFPS(s string) float64 {
	fps, err := strconv.ParseFloat(s, 64)
	if err != nil || fps <= 0 {
		transition.Logger().Warn("invalid fps, using default",
			slog.String("fps", s), slog.Float64("default", transition.DefaultFPS))
		return transition.DefaultFPS
	}
	return fps
}

// setupLogging installs the process logger. Logs go to w and, when file
// is set, to a rotated log file as well.
func setupLogging(w io.Writer, level, file string) (io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, usageError(fmt.Errorf("log level %q: %w", level, err))
	}

	var closer io.Closer = nopCloser{}
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    5, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		}
		w = io.MultiWriter(w, lj)
		closer = lj
	}
	transition.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func usageError(err error) error {
	return &producer.Error{Code: producer.CodeUsage, Err: err}
}
