package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/gratail/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	display := flag.String("display", "", "tui or window (optional, defaults to config)")
	once := flag.Bool("once", false, "render a finished log to a BMP snapshot and exit")
	snapshotPath := flag.String("snapshot", "", "write the final frame to this BMP file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gratail [flags] [log-path]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		PrefsPath:    *prefsPath,
		LogPath:      flag.Arg(0),
		Display:      *display,
		Once:         *once,
		SnapshotPath: *snapshotPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gratail: %v\n", err)
		return 1
	}
	return 0
}
