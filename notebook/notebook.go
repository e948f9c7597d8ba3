// Package notebook loads Jupyter notebook (.ipynb) files and exposes their
// code cells for execution. Files are validated against a minimal nbformat-4
// schema before use, so malformed notebooks fail loudly at load time instead
// of producing confusing cells later.
package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// CellType identifies a notebook cell kind.
type CellType string

const (
	// CellCode is an executable code cell.
	CellCode CellType = "code"

	// CellMarkdown is a markdown cell.
	CellMarkdown CellType = "markdown"

	// CellRaw is a raw cell.
	CellRaw CellType = "raw"
)

// Notebook is a parsed, validated notebook.
type Notebook struct {
	// NBFormat is the notebook format major version (4 for current files).
	NBFormat int

	// Cells are the notebook's cells in document order.
	Cells []Cell
}

// Cell is one notebook cell with its source joined into a single string.
type Cell struct {
	Type   CellType
	Source string
}

// CodeCells returns the notebook's code cells in order, skipping cells whose
// source is empty or whitespace.
func (nb *Notebook) CodeCells() []Cell {
	var cells []Cell
	for _, c := range nb.Cells {
		if c.Type == CellCode && strings.TrimSpace(c.Source) != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// Load reads, validates, and parses a notebook from r.
func Load(r io.Reader) (*Notebook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("notebook: read failed: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, err
	}

	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("notebook: parse failed: %w", err)
	}

	nb := &Notebook{NBFormat: raw.NBFormat}
	for _, rc := range raw.Cells {
		source, err := joinSource(rc.Source)
		if err != nil {
			return nil, fmt.Errorf("notebook: bad cell source: %w", err)
		}
		nb.Cells = append(nb.Cells, Cell{
			Type:   CellType(rc.Type),
			Source: source,
		})
	}
	return nb, nil
}

// LoadFile reads, validates, and parses the notebook at path.
func LoadFile(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("notebook: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

type rawNotebook struct {
	NBFormat int       `json:"nbformat"`
	Cells    []rawCell `json:"cells"`
}

type rawCell struct {
	Type   string          `json:"cell_type"`
	Source json.RawMessage `json:"source"`
}

// joinSource normalizes a cell's source field, which nbformat allows to be
// either a single string or an array of line strings.
func joinSource(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}
