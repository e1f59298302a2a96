package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atomicstack/cheatmenu/internal/app"
	"github.com/atomicstack/cheatmenu/internal/clipboard"
	"github.com/atomicstack/cheatmenu/internal/config"
	"github.com/atomicstack/cheatmenu/internal/logging"
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	"github.com/atomicstack/cheatmenu/internal/version"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprint(os.Stderr, config.Usage())
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the session about to start: which entries
// file it will read, where a selection will go and how big the view is.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	return map[string]interface{}{
		"version":  version.Version,
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"logPath":  logging.Path(),
		"source":   describeSource(cfg.App.SourcePath),
		"output":   describeOutput(cfg.App),
		"terminal": describeTerminal(cfg.App, os.Getenv("TERM")),
	}
}

type sourceInfo struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Size   int64  `json:"size,omitempty"`
	Error  string `json:"error,omitempty"`
}

// describeSource resolves the entries file. A missing file is a fresh start,
// not an error.
func describeSource(path string) sourceInfo {
	info := sourceInfo{Path: path}
	if abs, err := filepath.Abs(path); err == nil {
		info.Path = abs
	}
	st, err := os.Stat(info.Path)
	switch {
	case err == nil:
		info.Exists = true
		info.Size = st.Size()
	case !errors.Is(err, fs.ErrNotExist):
		info.Error = err.Error()
	}
	return info
}

type outputInfo struct {
	PrintOnly bool   `json:"print_only"`
	Clipboard bool   `json:"clipboard"`
	Group     string `json:"group,omitempty"`
}

func describeOutput(cfg app.Config) outputInfo {
	return outputInfo{
		PrintOnly: cfg.PrintOnly,
		Clipboard: clipboard.Available(),
		Group:     cfg.Group,
	}
}

type terminalInfo struct {
	Term     string     `json:"term,omitempty"`
	Viewport viewport   `json:"viewport"`
	Streams  []ttyProbe `json:"streams"`
}

type viewport struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// describeTerminal probes the standard streams and works out the viewport the
// menu will use: fixed --width/--height win over the first terminal found.
func describeTerminal(cfg app.Config, termName string) terminalInfo {
	info := terminalInfo{Term: termName, Viewport: viewport{Source: "default"}}
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	for _, s := range streams {
		probe := ttyProbe{Name: s.name}
		if fd := int(s.file.Fd()); fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if info.Viewport.Source == "default" {
					info.Viewport = viewport{Source: s.name, Width: width, Height: height}
				}
			}
		}
		info.Streams = append(info.Streams, probe)
	}
	if cfg.Width > 0 {
		info.Viewport.Width = cfg.Width
		info.Viewport.Source = "flags"
	}
	if cfg.Height > 0 {
		info.Viewport.Height = cfg.Height
		info.Viewport.Source = "flags"
	}
	return info
}
