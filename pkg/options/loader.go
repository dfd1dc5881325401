package options

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks a filesystem of JSON/YAML option documents and returns the
// settings they declare, in file walk order then sorted key order within a
// file. Documents hold dotted keys, nested maps, or a mix of both.
func LoadFS(fsys fs.FS) ([]Setting, error) {
	var settings []Setting
	if fsys == nil {
		return settings, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOptionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("options: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		fromFile, err := FromMap(doc)
		if err != nil {
			return fmt.Errorf("options: file %s: %w", path, err)
		}
		settings = append(settings, fromFile...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func parseDocument(data []byte, source string) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("options: file %s is empty", source)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return nil, fmt.Errorf("options: parse %s: invalid JSON or YAML", source)
}

func isOptionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
