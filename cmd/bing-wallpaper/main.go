// Command bing-wallpaper archives today's Bing wallpaper and updates README.md.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/handiism/bing-wallpaper/internal/collector"
	"github.com/handiism/bing-wallpaper/internal/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

var (
	Output    = pflag.String("output", "archives", "output directory name, relative to the base directory")
	Market    = pflag.String("market", "zh-CN", "bing market (e.g., zh-CN, en-US)")
	BaseDir   = pflag.String("base-dir", "", "base directory (default: nearest ancestor of the executable containing .git, go.mod or go.work)")
	Thumbnail = pflag.Int("thumbnail", 0, "also save a thumbnail no larger than this many pixels per side (0 to disable)")
	LogLevel  = levelFlag("log-level", slog.LevelInfo, "log level")
	LogJSON   = pflag.Bool("log-json", false, "use json logs")
	Help      = pflag.BoolP("help", "h", false, "show this help text")
)

func levelFlag(name string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	pflag.TextVar(level, name, def, usage)
	return level
}

func main() {
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	logger := newLogger(os.Stderr)

	settings := config.DefaultSettings()
	settings.OutputDir = *Output
	settings.Market = *Market
	settings.BaseDir = *BaseDir
	settings.ThumbnailSize = *Thumbnail
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, settings, logger); err != nil {
		logger.Error("critical error in execution", "error", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	if *LogJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: LogLevel,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      LogLevel,
		TimeFormat: time.DateTime,
	}))
}

func run(ctx context.Context, settings *config.Settings, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	c, err := collector.New(settings, logger)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}
