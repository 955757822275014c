package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/retrosh/internal/console"
)

var ErrUnsupportedFormat = errors.New("store: unsupported export format")

type ExportEntry struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type ExportData struct {
	Theme      string        `json:"theme"`
	ExportedAt time.Time     `json:"exported_at"`
	History    []string      `json:"history"`
	Entries    []ExportEntry `json:"entries"`
}

// Snapshot captures the console's transcript, theme and history.
func Snapshot(c *console.Console) ExportData {
	entries := c.Entries()
	data := ExportData{
		Theme:      c.Theme(),
		ExportedAt: time.Now().UTC(),
		History:    c.History(),
		Entries:    make([]ExportEntry, len(entries)),
	}
	for i, e := range entries {
		data.Entries[i] = ExportEntry{Kind: e.Kind.String(), Text: e.Text}
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one kind,text row per entry after a header row.
func WriteCSV(w io.Writer, data ExportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "text"}); err != nil {
		return err
	}
	for _, e := range data.Entries {
		if err := cw.Write([]string{e.Kind, e.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes data to path, choosing the format from the extension.
func Export(path string, data ExportData) error {
	var write func(io.Writer, ExportData) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".csv":
		write = WriteCSV
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := write(file, data); err != nil {
		return err
	}
	return file.Close()
}
