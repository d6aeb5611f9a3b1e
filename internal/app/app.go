package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gratail/internal/config"
	"github.com/five82/gratail/internal/exchange"
	"github.com/five82/gratail/internal/gra"
	"github.com/five82/gratail/internal/logtail"
	"github.com/five82/gratail/internal/prefs"
	"github.com/five82/gratail/internal/snapshot"
	"github.com/five82/gratail/internal/state"
	"github.com/five82/gratail/internal/ui"
	"github.com/five82/gratail/internal/window"
)

// Options configure the gratail application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/gratail/prefs.toml
	LogPath      string // overrides log_path from the config
	Display      string // overrides display from the config
	Once         bool   // render a finished log without a display
	SnapshotPath string // write a BMP of the final frame here
}

// Run tails the configured command log and displays it until the context is
// cancelled or the display exits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.LogPath); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(opts.Display); v != "" {
		cfg.Display = strings.ToLower(v)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if !opts.Once {
		if err := waitForFile(ctx, cfg.LogPath, cfg.WaitInterval); err != nil {
			return err
		}
	}

	tailer, err := logtail.Open(cfg.LogPath, logtail.Options{
		SafetyMargin: cfg.SafetyMargin,
		Follow:       !opts.Once,
		MaxLineBytes: cfg.MaxLineBytes,
	})
	if err != nil {
		return err
	}
	defer tailer.Close()

	header, err := waitForHeader(ctx, tailer, cfg.WaitInterval)
	if err != nil {
		return err
	}
	log.Printf("rendering %s at %dx%d", cfg.LogPath, header.Width, header.Height)

	store := &state.Store{}
	store.SetSource(cfg.LogPath, header)

	eng := exchange.New(header, exchange.Options{
		BatchBudget:  cfg.BatchBudget,
		IdleInterval: cfg.IdleInterval,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg     sync.WaitGroup
		runErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		presentCtx, stopPresenter := context.WithCancel(runCtx)
		presenterDone := StartPresenter(presentCtx, eng, store, cfg.PresentInterval)

		runErr = eng.Run(runCtx, tailer)

		stopPresenter()
		<-presenterDone
		store.Update(eng.Stats(), nil)
		if runErr != nil {
			store.Update(eng.Stats(), runErr)
			log.Printf("ingest stopped: %v", runErr)
		}
	}()

	var displayErr error
	switch {
	case opts.Once:
		wg.Wait()
	case cfg.Display == config.DisplayWindow:
		displayErr = window.Run(runCtx, eng, window.Options{Scale: cfg.WindowScale})
	default:
		displayErr = ui.Run(ui.Options{
			Context:   runCtx,
			Engine:    eng,
			Store:     store,
			LogPath:   cfg.LogPath,
			PollTick:  cfg.PresentInterval,
			Prefs:     userPrefs,
			PrefsPath: opts.PrefsPath,
		})
	}

	cancel()
	wg.Wait()

	stats := eng.Stats()
	log.Printf("stopped: %d applied, %d dropped, %d malformed", stats.Applied, stats.Dropped, stats.Malformed)

	if path := snapshotPath(opts, userPrefs); path != "" {
		if err := snapshot.WriteBMP(path, eng.Front()); err != nil {
			return err
		}
		log.Printf("snapshot written to %s", path)
	}

	if displayErr != nil {
		return fmt.Errorf("display: %w", displayErr)
	}
	if runErr != nil {
		return fmt.Errorf("ingest: %w", runErr)
	}
	return nil
}

// snapshotPath picks the final-frame output. Once mode always writes one.
func snapshotPath(opts Options, p prefs.Prefs) string {
	if v := strings.TrimSpace(opts.SnapshotPath); v != "" {
		return v
	}
	if opts.Once {
		return snapshot.Name(p.SnapshotDirPath(), time.Now())
	}
	return ""
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned func restores stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "gratail")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// waitForFile polls until path exists, backing off between attempts.
func waitForFile(ctx context.Context, path string, base time.Duration) error {
	if base <= 0 {
		base = defaultWaitInterval
	}
	timer := time.NewTimer(base)
	defer timer.Stop()

	for failures := 0; ; failures++ {
		_, err := os.Stat(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat log: %w", err)
		}
		if failures == 0 {
			log.Printf("waiting for %s to appear", path)
		}

		timer.Reset(calculateBackoff(failures, base))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// waitForHeader reads the first line of the log, polling while the
// producer has not finished writing it. The safety margin does not apply to
// the header, so a log shorter than the margin still starts.
func waitForHeader(ctx context.Context, t *logtail.Tailer, interval time.Duration) (gra.Header, error) {
	if interval <= 0 {
		interval = defaultWaitInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		line, err := t.NextIgnoringMargin()
		switch {
		case err == nil:
			h, err := gra.ParseHeader(line)
			if err != nil {
				return gra.Header{}, fmt.Errorf("parse header: %w", err)
			}
			return h, nil
		case errors.Is(err, io.EOF):
			return gra.Header{}, fmt.Errorf("read header: log is empty")
		case !errors.Is(err, logtail.ErrNotReady):
			return gra.Header{}, fmt.Errorf("read header: %w", err)
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return gra.Header{}, ctx.Err()
		case <-timer.C:
		}
	}
}
