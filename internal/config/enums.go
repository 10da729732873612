package config

import (
	"fmt"
)

// OutputFormat describes varieties of dumps of the cfg command.
type OutputFormat int

const (
	OutputFormatInvalid OutputFormat = iota

	// OutputFormatText is the ranges dump.
	OutputFormatText

	// OutputFormatJSON is the ranges dump in JSON.
	OutputFormatJSON

	// OutputFormatDot is the Graphviz rendering of the control flow graph.
	OutputFormatDot
)

var outputFormatValueMap = map[OutputFormat]string{
	OutputFormatText: "text",
	OutputFormatJSON: "json",
	OutputFormatDot:  "dot",
}

func (s OutputFormat) String() string {
	v, ok := outputFormatValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// MarshalText for writing configs.
func (s OutputFormat) MarshalText() ([]byte, error) {
	v, ok := outputFormatValueMap[s]
	if !ok {
		return nil, fmt.Errorf("invalid output format %d", int(s))
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *OutputFormat) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outputFormatValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

// Set implements pflag.Value.
func (s *OutputFormat) Set(text string) error {
	return s.UnmarshalText([]byte(text))
}

// Type implements pflag.Value.
func (s *OutputFormat) Type() string {
	return "format"
}

// ColorMode describes when dumps are colored.
type ColorMode int

const (
	ColorModeInvalid ColorMode = iota
	ColorModeAuto
	ColorModeAlways
	ColorModeNever
)

var colorModeValueMap = map[ColorMode]string{
	ColorModeAuto:   "auto",
	ColorModeAlways: "always",
	ColorModeNever:  "never",
}

func (s ColorMode) String() string {
	v, ok := colorModeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// MarshalText for writing configs.
func (s ColorMode) MarshalText() ([]byte, error) {
	v, ok := colorModeValueMap[s]
	if !ok {
		return nil, fmt.Errorf("invalid color mode %d", int(s))
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *ColorMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range colorModeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown color mode %q", text)
}

// Set implements pflag.Value.
func (s *ColorMode) Set(text string) error {
	return s.UnmarshalText([]byte(text))
}

// Type implements pflag.Value.
func (s *ColorMode) Type() string {
	return "mode"
}

// Enabled resolves the mode for an output that is or is not a terminal.
func (s ColorMode) Enabled(terminal bool) bool {
	switch s {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return terminal
	}
}
