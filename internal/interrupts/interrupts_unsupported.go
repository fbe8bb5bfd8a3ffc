//go:build !linux

package interrupts

import (
	"context"
	"fmt"
	"iter"
	"runtime"
)

// UnsupportedReader is a fallback for platforms without /proc/interrupts
type UnsupportedReader struct{}

// newPlatformReader creates a fallback reader for unsupported platforms
func newPlatformReader(procPath string) Reader {
	return &UnsupportedReader{}
}

// Snapshot returns an error for unsupported platforms
func (r *UnsupportedReader) Snapshot(ctx context.Context, filter string) (iter.Seq2[Row, error], error) {
	if _, err := CompileFilter(filter); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: interrupt statistics not supported on %s", ErrSourceUnavailable, runtime.GOOS)
}

// Lookup returns an error for unsupported platforms
func (r *UnsupportedReader) Lookup(ctx context.Context, irq string) (*Row, error) {
	return nil, fmt.Errorf("%w: interrupt statistics not supported on %s", ErrSourceUnavailable, runtime.GOOS)
}
