package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/five82/guestdump/internal/config"
	"github.com/five82/guestdump/internal/logtail"
	"github.com/five82/guestdump/internal/prefs"
	"github.com/five82/guestdump/internal/render"
	"github.com/five82/guestdump/internal/scan"
	"github.com/five82/guestdump/internal/ui"
)

// Options configure a guestdump run.
type Options struct {
	ConfigPath string
	PrefsPath  string    // empty uses default ~/.config/guestdump/prefs.toml
	Color      string    // overrides the configured color mode when set
	Pager      bool      // show the report in the interactive pager
	Stdout     io.Writer // nil uses os.Stdout
}

// Run scans the VirtualBox log and prints the report. A log that does not
// match the expected layout still prints what was found, followed by the
// diagnostic, and Run returns the *scan.ScriptError.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	colorSetting := cfg.Color
	if opts.Color != "" {
		colorSetting = opts.Color
	}
	mode, err := render.ParseColorMode(colorSetting)
	if err != nil {
		return err
	}

	logPath, err := config.LogPath()
	if err != nil {
		return err
	}
	lines, err := logtail.Load(logPath)
	if err != nil {
		return err
	}
	log.Printf("read %d lines from %s", len(lines), logPath)

	report, scanErr := scan.Scan(lines)
	if scanErr != nil {
		log.Printf("scan stopped: %v", scanErr)
	} else if !report.Clean {
		log.Printf("banner at line %d, marker at line %d, %d fields", report.Banner+1, report.Marker+1, len(report.Fields))
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	output := render.NewHighlighter(out, mode, cfg.HighlightColor).Lines(report, scanErr)

	if opts.Pager {
		prefsPath := opts.PrefsPath
		if prefsPath == "" {
			prefsPath = prefs.DefaultPath()
		}
		uiOpts := ui.Options{
			Context:   ctx,
			Title:     logPath,
			Lines:     output,
			ThemeName: prefs.Load(prefsPath).Theme,
			PrefsPath: prefsPath,
		}
		if err := ui.Run(uiOpts); err != nil {
			return fmt.Errorf("run pager: %w", err)
		}
		return scanErr
	}

	if err := render.Write(out, output); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return scanErr
}
