package interrupts

import (
	"context"
	"iter"

	"github.com/pkg/errors"
)

// DefaultFilter matches every non-empty line.
const DefaultFilter = "."

var (
	// ErrSourceUnavailable is returned when the interrupt statistics file
	// cannot be opened or read.
	ErrSourceUnavailable = errors.New("interrupt statistics source unavailable")
	// ErrInvalidFilter is returned when a filter is not a valid regular expression.
	ErrInvalidFilter = errors.New("invalid filter expression")
	// ErrNotFound is returned by Lookup when no row carries the requested label.
	ErrNotFound = errors.New("interrupt not found")
)

// Row is one parsed line of /proc/interrupts.
type Row struct {
	IRQ    string   `json:"IRQ"`
	PerCPU []uint64 `json:"PerCPU"`
	Total  uint64   `json:"Total"`
	Type   string   `json:"Type"`
	Edge   string   `json:"Edge"`
	Device string   `json:"Device"`
}

// Reader interface for interrupt statistics
type Reader interface {
	// Snapshot reads the source once and returns its rows matching filter.
	// Source and filter errors are returned before any row is produced;
	// a malformed row ends the sequence with a *ParseError.
	Snapshot(ctx context.Context, filter string) (iter.Seq2[Row, error], error)
	// Lookup returns the row labelled irq, with or without the trailing colon.
	Lookup(ctx context.Context, irq string) (*Row, error)
}

// NewReader creates a new interrupt statistics reader for the current
// platform, reading from the procfs mounted at procPath.
func NewReader(procPath string) Reader {
	return newPlatformReader(procPath)
}

// Collect drains seq. On error it returns the rows produced before the
// failing one together with the error.
func Collect(seq iter.Seq2[Row, error]) ([]Row, error) {
	rows := []Row{}
	for row, err := range seq {
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
