package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusCmd_Use(t *testing.T) {
	assert.Equal(t, "corpus", corpusCmd.Use)
}

func TestCorpusCmd_HasSubcommands(t *testing.T) {
	commands := corpusCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "import")
	assert.Contains(t, commandNames, "stats")
}

func TestCorpusListCmd_ListsSeedDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Science")
	assert.Contains(t, buf.String(), "documents.")
}

func TestCorpusShowCmd_ShowsDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "show", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Document #1")
	assert.Contains(t, buf.String(), "Subject: Science")
	assert.Contains(t, buf.String(), "Grades:")
}

func TestCorpusShowCmd_InvalidID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "show", "not-a-number"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document ID")
}

func TestCorpusShowCmd_MissingDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "show", "9999"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetching document")
}

func TestCorpusStatsCmd_ShowsComposition(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Documents:")
	assert.Contains(t, buf.String(), "By subject:")
	assert.Contains(t, buf.String(), "By grade:")
}

func TestCorpusImportCmd_ImportsDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	t.Setenv("HOME", t.TempDir())

	importFile := filepath.Join(t.TempDir(), "docs.json")
	payload := `[
  {
    "id": 100,
    "subject_category": "Science",
    "applicable_grades": ["2", "3"],
    "keywords": ["volcano", "eruption"],
    "body": "Volcanoes form where magma reaches the surface.",
    "source_citation": "Earth Science Framework, unit 5"
  }
]`
	require.NoError(t, os.WriteFile(importFile, []byte(payload), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "import", importFile})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Imported 1 documents")
	assert.Contains(t, buf.String(), "corpus.db")
}

func TestCorpusImportCmd_InvalidJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	t.Setenv("HOME", t.TempDir())

	importFile := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(importFile, []byte("not json"), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "import", importFile})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestCorpusImportCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "import", filepath.Join(t.TempDir(), "missing.json")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
