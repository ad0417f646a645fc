package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends WindowStats records to telemetry.csv inside an output
// directory: the header is written once, subsequent appends are bare rows.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter creates the output directory if needed and opens (truncates)
// telemetry.csv inside it. An empty dir disables output and returns a nil
// Writer, on which every method is a no-op.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	return &Writer{file: f}, nil
}

// Append writes one stats record.
func (w *Writer) Append(stats WindowStats) error {
	if w == nil {
		return nil
	}
	records := []WindowStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return w.file.Close()
}
