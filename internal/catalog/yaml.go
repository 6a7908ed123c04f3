package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	appErrors "ariacombo/internal/errors"
)

// YAMLFile reads options from a YAML document, either a bare list or a
// mapping with an "options" list:
//
//	options:
//	  - id: go
//	    label: Go
//	    value: 1
//	    description: Markdown shown in the preview.
type YAMLFile struct {
	Path string
}

type yamlDocument struct {
	Options []Item `yaml:"options"`
}

// Load implements Source.
func (y YAMLFile) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: the option file path is chosen by the user
	data, err := os.ReadFile(y.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("option file %s not found", y.Path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", y.Path, err)
	}
	items, err := parseYAML(data)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("parse %s: %v", y.Path, err), err)
	}
	return items, validate(items)
}

func parseYAML(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '-' || trimmed[0] == '[' {
		var items []Item
		if err := yaml.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var doc yamlDocument
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Options, nil
}
