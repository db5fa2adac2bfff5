// Package loader reads raw tree data from JSON or YAML and writes flattened
// output back out.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"treeselect/internal/debug"
	appErrors "treeselect/internal/errors"
)

// Format is a serialization format for tree data.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Stdin is the path that makes Load read from standard input.
const Stdin = "-"

// ParseFormat maps a configured format name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("unknown format %q (want json or yaml)", name), nil)
	}
}

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml/.yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var stdin io.Reader = os.Stdin

// Load reads and decodes the tree data at path. Stdin reads JSON from
// standard input.
func Load(path string) (any, error) {
	if path == Stdin {
		return Decode(stdin, FormatJSON)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("reading %s: %v", path, err), err)
	}
	debug.Logf("loader: read %d bytes from %s", len(data), path)
	v, err := Decode(bytes.NewReader(data), FormatForPath(path))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("parsing %s: %v", path, err), err)
	}
	return v, nil
}

// Decode reads a single document from r. JSON numbers are kept as
// json.Number so large ids survive unchanged.
func Decode(r io.Reader, format Format) (any, error) {
	var v any
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&v); err != nil && err != io.EOF {
			return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decoding yaml: %v", err), err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil && err != io.EOF {
			return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decoding json: %v", err), err)
		}
	default:
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("unknown format %q", format), nil)
	}
	return v, nil
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("unknown format %q", format), nil)
	}
}
