package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported report formats.
func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatJSON}
}

// ParseFormat resolves a format name, ignoring case. Empty means text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w %q (want text, yaml or json)", ErrUnknownFormat, name)
	}
}

// Write prints s to w in the requested format.
func Write(w io.Writer, s Selection, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, s Selection) error {
	var b strings.Builder
	b.WriteString("All selected packages:\n")
	if s.Empty() {
		b.WriteString("(none)\n")
	} else {
		b.WriteString(strings.Join(s.Names(), " "))
		b.WriteString("\n")
	}
	if s.Command != "" {
		fmt.Fprintf(&b, "Install with: %s\n", s.Command)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
