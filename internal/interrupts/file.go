package interrupts

import (
	"context"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// maxSourceSize bounds a single read of the source. procfs files report a
// size of 0 or 4096 regardless of their content, so the size is not trusted.
const maxSourceSize = 64 * 1024 * 1024

var errSourceTooLarge = errors.New("source exceeds read limit")

// FileReader reads interrupt statistics from a file on an afero filesystem.
type FileReader struct {
	fs      afero.Fs
	path    string
	maxSize int64
}

// NewFileReader creates a reader for the interrupts file at path on fs.
func NewFileReader(fs afero.Fs, path string) *FileReader {
	return &FileReader{
		fs:      fs,
		path:    path,
		maxSize: maxSourceSize,
	}
}

// Snapshot returns the rows of the file matching filter
func (r *FileReader) Snapshot(ctx context.Context, filter string) (iter.Seq2[Row, error], error) {
	re, err := CompileFilter(filter)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.read()
	if err != nil {
		log.WithError(err).WithField("path", r.path).Error("Failed to read interrupt statistics")
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return Parse(ctx, data, re)
}

// Lookup returns the row whose label matches irq
func (r *FileReader) Lookup(ctx context.Context, irq string) (*Row, error) {
	label := strings.TrimSuffix(strings.TrimSpace(irq), ":")
	if label == "" {
		return nil, fmt.Errorf("%w: empty IRQ label", ErrNotFound)
	}

	// Narrow the raw-line filter to the label column so other rows are not parsed.
	seq, err := r.Snapshot(ctx, `^\s*`+regexp.QuoteMeta(label)+`:`)
	if err != nil {
		return nil, err
	}

	for row, err := range seq {
		if err != nil {
			return nil, err
		}
		if strings.TrimSuffix(row.IRQ, ":") == label {
			return &row, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, label)
}

func (r *FileReader) read() ([]byte, error) {
	log.Debugf("Reading '%s' file...", r.path)

	f, err := r.fs.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// One byte past the limit tells a full file from a truncated one.
	data, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxSize {
		return nil, errors.Wrapf(errSourceTooLarge, "%s larger than %d bytes", r.path, r.maxSize)
	}
	return data, nil
}
