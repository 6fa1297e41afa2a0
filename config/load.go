package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed movement.yaml
var defaultMovementYAML []byte

// Format selects the decoder for a movement file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("config: unsupported movement file %s", path)
}

// LoadMovement reads a yaml or toml movement file. Keys missing from the
// file keep their default values. The result is validated and derived.
func LoadMovement(path string) (MovementConfig, error) {
	format, err := FormatFor(path)
	if err != nil {
		return MovementConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return MovementConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	m, err := ParseMovement(data, format)
	if err != nil {
		return MovementConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return m, nil
}

// ParseMovement decodes data over the defaults.
func ParseMovement(data []byte, format Format) (MovementConfig, error) {
	m := DefaultMovement()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return MovementConfig{}, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return MovementConfig{}, fmt.Errorf("unmarshal toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return MovementConfig{}, fmt.Errorf("unknown toml keys: %v", undecoded)
		}
	default:
		return MovementConfig{}, fmt.Errorf("unknown format %d", format)
	}

	if err := m.Validate(); err != nil {
		return MovementConfig{}, fmt.Errorf("validate: %w", err)
	}
	m.Derive()
	return m, nil
}

// DefaultMovementYAML is the embedded reference file, every key documented.
func DefaultMovementYAML() []byte {
	return defaultMovementYAML
}

// ApplyMovement replaces the global tuning after a successful load.
func ApplyMovement(m MovementConfig) {
	Movement = m
}
