package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	appErrors "ariacombo/internal/errors"
)

func TestOpenPicksSource(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"", "catalog.Static"},
		{"opts.yaml", "catalog.YAMLFile"},
		{"opts.YML", "catalog.YAMLFile"},
		{"opts.toml", "catalog.TOMLFile"},
		{"opts.db", "catalog.SQLite"},
		{"opts.sqlite3", "catalog.SQLite"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			src, err := Open(tc.path, "")
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tc.path, err)
			}
			if got := typeName(src); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	if _, err := Open("opts.csv", ""); !appErrors.IsCode(err, appErrors.CodeSourceUnsupported) {
		t.Errorf("expected unsupported source error, got %v", err)
	}
}

func typeName(s Source) string {
	switch s.(type) {
	case Static:
		return "catalog.Static"
	case YAMLFile:
		return "catalog.YAMLFile"
	case TOMLFile:
		return "catalog.TOMLFile"
	case SQLite:
		return "catalog.SQLite"
	}
	return "unknown"
}

func TestSampleIsValid(t *testing.T) {
	items, err := Sample().Load(context.Background())
	if err != nil {
		t.Fatalf("sample failed validation: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected sample items")
	}
}

func TestPayloadFallsBackToLabel(t *testing.T) {
	if got := (Item{Label: "Go"}).Payload(); got != "Go" {
		t.Errorf("expected label payload, got %v", got)
	}
	if got := (Item{Label: "Go", Value: 3}).Payload(); got != 3 {
		t.Errorf("expected explicit payload, got %v", got)
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	_, err := Static{{ID: "a", Label: "A"}, {ID: "a", Label: "B"}}.Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeDuplicateOption) {
		t.Errorf("expected duplicate option error, got %v", err)
	}
	_, err = Static{{ID: "a"}}.Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeParseFailed) {
		t.Errorf("expected missing label error, got %v", err)
	}
}

func TestYAMLFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Mapping", func(t *testing.T) {
		path := filepath.Join(dir, "mapping.yaml")
		writeFile(t, path, `
options:
  - id: a
    label: Alpha
    value: 1
  - id: b
    label: Bravo
    value: 2
    description: "**bold**"
`)
		items, err := YAMLFile{Path: path}.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(items) != 2 || items[1].ID != "b" || items[1].Value != 2 {
			t.Fatalf("unexpected items %+v", items)
		}
		if items[1].Description != "**bold**" {
			t.Errorf("expected description, got %q", items[1].Description)
		}
	})

	t.Run("BareList", func(t *testing.T) {
		path := filepath.Join(dir, "list.yml")
		writeFile(t, path, "- label: One\n- label: Two\n")
		items, err := YAMLFile{Path: path}.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(items) != 2 || items[0].Label != "One" {
			t.Fatalf("unexpected items %+v", items)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := YAMLFile{Path: filepath.Join(dir, "nope.yaml")}.Load(context.Background())
		if !appErrors.IsCode(err, appErrors.CodeSourceNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "options: [unterminated\n")
		_, err := YAMLFile{Path: path}.Load(context.Background())
		if !appErrors.IsCode(err, appErrors.CodeParseFailed) {
			t.Errorf("expected parse failure, got %v", err)
		}
	})
}

func TestTOMLFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Options", func(t *testing.T) {
		path := filepath.Join(dir, "opts.toml")
		writeFile(t, path, `
[[options]]
id = "a"
label = "Alpha"
value = 1

[[options]]
label = "Bravo"
description = "second"
`)
		items, err := TOMLFile{Path: path}.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(items) != 2 || items[0].ID != "a" || items[1].Label != "Bravo" {
			t.Fatalf("unexpected items %+v", items)
		}
		if items[0].Value != int64(1) {
			t.Errorf("expected integer value, got %#v", items[0].Value)
		}
		if items[1].Payload() != "Bravo" {
			t.Errorf("expected label payload, got %v", items[1].Payload())
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[[options]\nlabel = \n")
		_, err := TOMLFile{Path: path}.Load(context.Background())
		if !appErrors.IsCode(err, appErrors.CodeParseFailed) {
			t.Errorf("expected parse failure, got %v", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := TOMLFile{Path: filepath.Join(dir, "nope.toml")}.Load(context.Background())
		if !appErrors.IsCode(err, appErrors.CodeSourceNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	stmts := []string{
		`CREATE TABLE options (id TEXT, label TEXT NOT NULL, value TEXT, description TEXT)`,
		`INSERT INTO options (id, label, value, description) VALUES ('a', 'Alpha', '1', 'first')`,
		`INSERT INTO options (id, label, value, description) VALUES ('b', 'Bravo', NULL, NULL)`,
		`INSERT INTO options (id, label, value, description) VALUES (NULL, 'Charlie', '3', NULL)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	_ = db.Close()

	items, err := SQLite{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %+v", items)
	}
	if items[0].ID != "a" || items[0].Value != "1" || items[0].Description != "first" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Value != nil || items[1].Payload() != "Bravo" {
		t.Errorf("expected NULL value to fall back to label, got %+v", items[1])
	}
	if items[2].ID != "" {
		t.Errorf("expected NULL id to stay empty, got %q", items[2].ID)
	}

	if _, err := (SQLite{Path: path, Table: "options; DROP TABLE options"}).Load(context.Background()); !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Errorf("expected invalid table name to be rejected, got %v", err)
	}
	if _, err := (SQLite{Path: path, Table: "missing"}).Load(context.Background()); !appErrors.IsCode(err, appErrors.CodeQueryFailed) {
		t.Errorf("expected query failure for a missing table, got %v", err)
	}
	if _, err := (SQLite{Path: path + ".gone"}).Load(context.Background()); !appErrors.IsCode(err, appErrors.CodeSourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
