package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/morsedb/morsedb/pkg/errors"
)

// Format is a bundle file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown bundle extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
}

// Decode parses a bundle. Unknown fields are rejected in every format so
// that typos do not silently drop data.
func Decode(data []byte, format Format) (*Bundle, error) {
	var b Bundle
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "decode yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &b)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return nil, errors.New(errors.ErrCodeInvalidBundle, "decode toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported bundle format %q", format)
	}
	return &b, nil
}

// Encode writes a bundle in the given format.
func Encode(w io.Writer, b *Bundle, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(b); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported bundle format %q", format)
	}
	return nil
}

// ReadFile reads a bundle file and returns its raw bytes along with the
// decoded bundle. The raw bytes identify the input for caching.
func ReadFile(path string) (*Bundle, []byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read bundle %s", path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	b, err := Decode(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, data, nil
}

// Load reads and decodes a bundle file.
func Load(path string) (*Bundle, error) {
	b, _, err := ReadFile(path)
	return b, err
}
