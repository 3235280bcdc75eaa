// Package payload decodes request bodies supplied as JSON or YAML documents.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a JSON or YAML document from path. "-" reads stdin.
func Load(path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("payload file path is empty")
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open payload file: %w", err)
		}
		defer file.Close()
		r = file
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload file: %w", err)
	}
	return Parse(raw, filepath.Ext(path))
}

// Parse decodes data according to the file extension, trying JSON then YAML when unknown.
func Parse(data []byte, ext string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("payload is empty")
	}

	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, dec := range decoders {
		if ext == dec.ext {
			var out any
			if err := dec.fn(data, &out); err != nil {
				return nil, fmt.Errorf("decode %s payload: %w", dec.name, err)
			}
			return out, nil
		}
	}

	var out any
	jsonErr := json.Unmarshal(data, &out)
	if jsonErr == nil {
		return out, nil
	}
	out = nil
	if yamlErr := yaml.Unmarshal(data, &out); yamlErr != nil {
		return nil, fmt.Errorf("decode payload: json: %v; yaml: %v", jsonErr, yamlErr)
	}
	return out, nil
}
