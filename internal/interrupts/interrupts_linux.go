//go:build linux

package interrupts

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// newPlatformReader creates a reader over the host's /proc/interrupts
func newPlatformReader(procPath string) Reader {
	return NewFileReader(afero.NewOsFs(), filepath.Join(procPath, "interrupts"))
}
