//go:build linux

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores flags parsed by a previous run, which cobra keeps.
func resetFlags(t *testing.T, flags ...*pflag.FlagSet) {
	t.Helper()

	for _, fs := range flags {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	level := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(level) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(t, rootCmd.PersistentFlags(), serveCmd.Flags())
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeProcInterrupts(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "interrupts"), []byte(testInterrupts), 0o444))
	return dir
}

func TestRootSnapshotProcPathFlag(t *testing.T) {
	setSnapshotOpts(t, outputJSON, false)
	dir := writeProcInterrupts(t)

	out, err := executeRoot(t, "--proc-path", dir, "snapshot", "rtc0")
	require.NoError(t, err)
	require.Equal(t, dir, cfg.ProcPath)
	require.Equal(t,
		`{"IRQ":"8:","PerCPU":[0,0],"Total":0,"Type":"IR-IO-APIC","Edge":"8-edge","Device":"rtc0"}`+"\n",
		out)
}

func TestRootSnapshotEnv(t *testing.T) {
	setSnapshotOpts(t, outputJSON, true)
	dir := writeProcInterrupts(t)
	t.Setenv("PICOIRQ_LOG_LEVEL", "debug")
	// snapshot never listens, so a bad port must not stop it.
	t.Setenv("PICOIRQ_PORT", "http")

	out, err := executeRoot(t, "--proc-path", dir, "snapshot", "i8042")
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, cfg.LogLevel)
	require.Equal(t, `{"IRQ":"1:","Device":"i8042","Total":126723}`+"\n", out)
}

func TestRootInvalidConfig(t *testing.T) {
	_, err := executeRoot(t, "--proc-path", "relative/proc", "snapshot")
	require.Error(t, err)

	_, err = executeRoot(t, "--proc-path", writeProcInterrupts(t), "--log-level", "loud", "snapshot")
	require.Error(t, err)
}

func TestRootServeRejectsListenAddress(t *testing.T) {
	_, err := executeRoot(t, "--proc-path", writeProcInterrupts(t), "--log-level", "info", "serve", "--port", "70000")
	require.ErrorContains(t, err, "port")
}
