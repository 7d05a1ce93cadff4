// Package loader reads a JSON parameters file, located either by an explicit
// path or through an environment variable, and returns the decoded tree.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultEnvVar is the environment variable consulted when no path is given.
const DefaultEnvVar = "VIASH_WORK_PARAMS"

// Load decodes the JSON file at path, or at $VIASH_WORK_PARAMS when path is
// empty.
func Load(path string) (any, error) {
	return LoadWith(path, DefaultEnvVar)
}

// LoadWith is Load with a configurable environment variable name.
func LoadWith(path, envVar string) (any, error) {
	resolved, err := ResolvePath(path, envVar)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: resolved, Err: err}
		}
		return nil, fmt.Errorf("reading parameters file: %w", err)
	}

	tree, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: resolved, Err: err}
	}

	return tree, nil
}

// ResolvePath returns path, or the value of envVar when path is empty.
func ResolvePath(path, envVar string) (string, error) {
	if path != "" {
		return path, nil
	}
	value, ok := os.LookupEnv(envVar)
	if !ok {
		return "", &ConfigurationError{EnvVar: envVar}
	}
	return value, nil
}

// Decode reads a single JSON value from r. Integral numbers become int64,
// all other numbers float64.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	// Reject trailing content after the first value
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}

	return normalize(tree), nil
}

// normalize replaces json.Number values with int64 or float64.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	case map[string]any:
		for key, item := range val {
			val[key] = normalize(item)
		}
		return val
	default:
		return v
	}
}
