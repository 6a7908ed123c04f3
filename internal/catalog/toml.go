package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	appErrors "ariacombo/internal/errors"
)

// TOMLFile reads options from an array of tables:
//
//	[[options]]
//	id = "go"
//	label = "Go"
//	value = 1
type TOMLFile struct {
	Path string
}

type tomlDocument struct {
	Options []Item `toml:"options"`
}

// Load implements Source.
func (f TOMLFile) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: the option file path is chosen by the user
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("option file %s not found", f.Path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("parse %s: %v", f.Path, err), err)
	}
	return doc.Options, validate(doc.Options)
}
