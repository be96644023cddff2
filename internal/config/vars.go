// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Vars is a flat variable-name to value mapping. It is the shape shared by
// the vars file and the process environment.
type Vars map[string]string

// LoadVarsFile reads KEY=VALUE pairs from the file at path.
//
// Blank lines, lines starting with "#" and lines without "=" are skipped.
// Keys and values are trimmed of surrounding whitespace; the value is
// everything after the first "=". A file that does not exist yields an empty
// map and no error.
func LoadVarsFile(path string) (Vars, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Vars{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening vars file: %w", err)
	}
	defer f.Close()

	vars, err := parseVars(f)
	if err != nil {
		return nil, fmt.Errorf("error reading vars file %s: %w", path, err)
	}

	return vars, nil
}

// parseVars reads r line by line with no limit on line length.
func parseVars(r io.Reader) (Vars, error) {
	vars := Vars{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if key, value, ok := splitVar(line); ok {
			vars[key] = value
		}
		if errors.Is(err, io.EOF) {
			return vars, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// splitVar splits one vars-file line into key and value.
func splitVar(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

func varsFromEnviron(environ []string) Vars {
	return env.ToMap(environ)
}

// Merge composes layers left to right. A key present in a later layer
// replaces the value from any earlier one, even when the later value is
// empty.
func Merge(layers ...Vars) (Vars, error) {
	merged := Vars{}
	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging vars: %w", err)
		}
	}

	return merged, nil
}
