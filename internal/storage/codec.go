// Package storage persists projects in the flat JSON layout used by the
// browser editor, plus a YAML rendition for hand-written projects.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes p in the given format.
func Encode(p project.Project, format Format) ([]byte, error) {
	doc := fromProject(p)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// Decode parses data and checks its gross shape: a known template, a settings
// object and a messages list. Setting values are not range checked. source
// names the input in errors.
func Decode(data []byte, format Format, source string) (project.Project, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return project.Project{}, apperrors.NewParseError(source, yamlLine(err), err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return project.Project{}, apperrors.NewParseError(source, jsonLine(data, err), err)
		}
	}

	if err := validateDocument(&doc); err != nil {
		return project.Project{}, err
	}

	return doc.toProject(), nil
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
