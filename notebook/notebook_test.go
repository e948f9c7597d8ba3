package notebook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotebook = `{
	"nbformat": 4,
	"nbformat_minor": 5,
	"metadata": {},
	"cells": [
		{"cell_type": "markdown", "metadata": {}, "source": ["# Title\n"]},
		{"cell_type": "code", "metadata": {}, "source": ["x = 1\n", "print(x)\n"], "outputs": [], "execution_count": null},
		{"cell_type": "code", "metadata": {}, "source": "y = 2", "outputs": [], "execution_count": null},
		{"cell_type": "code", "metadata": {}, "source": "   ", "outputs": [], "execution_count": null},
		{"cell_type": "raw", "metadata": {}, "source": []}
	]
}`

func TestLoadJoinsSourceLines(t *testing.T) {
	nb, err := Load(strings.NewReader(sampleNotebook))
	require.NoError(t, err)

	assert.Equal(t, 4, nb.NBFormat)
	require.Len(t, nb.Cells, 5)
	assert.Equal(t, CellMarkdown, nb.Cells[0].Type)
	assert.Equal(t, "x = 1\nprint(x)\n", nb.Cells[1].Source)
	assert.Equal(t, "y = 2", nb.Cells[2].Source)
	assert.Equal(t, "", nb.Cells[4].Source)
}

func TestCodeCellsSkipsNonCodeAndBlank(t *testing.T) {
	nb, err := Load(strings.NewReader(sampleNotebook))
	require.NoError(t, err)

	cells := nb.CodeCells()
	require.Len(t, cells, 2)
	assert.Equal(t, "x = 1\nprint(x)\n", cells[0].Source)
	assert.Equal(t, "y = 2", cells[1].Source)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoadRejectsNonNotebook(t *testing.T) {
	_, err := Load(strings.NewReader(`{"title": "just some JSON"}`))
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestLoadRejectsBadCells(t *testing.T) {
	_, err := Load(strings.NewReader(`{
		"nbformat": 4,
		"cells": [{"cell_type": "sql", "source": "select 1"}]
	}`))
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestLoadRejectsOldFormat(t *testing.T) {
	_, err := Load(strings.NewReader(`{"nbformat": 3, "cells": []}`))
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotebook), 0644))

	nb, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, nb.CodeCells(), 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.ipynb"))
	require.Error(t, err)
}
