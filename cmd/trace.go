package cmd

import (
	"os"

	"github.com/atomicstack/pkgpick/internal/config"
	"github.com/atomicstack/pkgpick/internal/logging"
	"github.com/atomicstack/pkgpick/internal/logging/events"
	"golang.org/x/term"
)

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the standard descriptors; the first terminal with
// a readable size is the one the picker will draw on.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(probes))}
	for _, probe := range probes {
		result := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			result.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				result.Error = err.Error()
			default:
				result.Width, result.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, result)
	}
	return details
}
