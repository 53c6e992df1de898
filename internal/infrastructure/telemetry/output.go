package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Output writes window stats to <dir>/telemetry.csv.
// A nil *Output is valid and discards everything.
type Output struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewOutput creates the output directory and file.
// Returns nil if dir is empty (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}

	return &Output{dir: dir, file: f}, nil
}

// WriteWindow appends one window record
func (o *Output) WriteWindow(stats WindowStats) error {
	if o == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !o.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, o.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		o.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, o.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Close closes the output file.
func (o *Output) Close() error {
	if o == nil || o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}
