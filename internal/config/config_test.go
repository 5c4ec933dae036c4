package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hrdb.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	r := require.New(t)

	path := writeConfig(t, `
database:
  type: postgres
  url: postgres://localhost:5432/hr?sslmode=disable
queries: reports/all.sql
`)

	config, err := Load(path)
	r.NoError(err)
	r.Equal("postgres", config.Database.Type)
	r.Equal("postgres://localhost:5432/hr?sslmode=disable", config.Database.URL)
	r.Equal("reports/all.sql", config.Queries)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	r := require.New(t)

	path := writeConfig(t, `
database:
  url: team.db
`)

	config, err := Load(path)
	r.NoError(err)
	r.Equal("sqlite", config.Database.Type)
	r.Equal("team.db", config.Database.URL)
	r.Equal("queries.sql", config.Queries)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	r := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	r.Error(err)
}

func TestLoadMissingDefaultFileFallsBack(t *testing.T) {
	r := require.New(t)

	// run from a directory guaranteed not to hold a default config
	wd, err := os.Getwd()
	r.NoError(err)
	r.NoError(os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config, err := Load("")
	r.NoError(err)
	r.Equal(Default(), config)
}

func TestLoadRejectsEmptyFields(t *testing.T) {
	r := require.New(t)

	path := writeConfig(t, `
database:
  type: ""
  url: hr.db
`)

	_, err := Load(path)
	r.ErrorContains(err, "database type")
}

func TestLoadInvalidYaml(t *testing.T) {
	r := require.New(t)

	_, err := Load(writeConfig(t, "database: [not: a: mapping"))
	r.Error(err)
}
