//go:build linux

package stat

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"
)

// LinuxReader implements kernel statistics for Linux
type LinuxReader struct {
	procPath string
}

// newPlatformReader creates a new Linux statistics reader
func newPlatformReader(procPath string) Reader {
	return &LinuxReader{procPath: procPath}
}

// GetInfo returns the interrupt and softirq totals since boot
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	fs, err := procfs.NewFS(r.procPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open procfs at %s", r.procPath)
	}

	st, err := fs.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "read kernel stat")
	}

	info := &Info{
		BootTime:        st.BootTime,
		InterruptsTotal: st.IRQTotal,
		SoftIRQTotal:    st.SoftIRQTotal,
		SoftIRQs: map[string]uint64{
			"HI":       st.SoftIRQ.Hi,
			"TIMER":    st.SoftIRQ.Timer,
			"NET_TX":   st.SoftIRQ.NetTx,
			"NET_RX":   st.SoftIRQ.NetRx,
			"BLOCK":    st.SoftIRQ.Block,
			"IRQ_POLL": st.SoftIRQ.BlockIoPoll,
			"TASKLET":  st.SoftIRQ.Tasklet,
			"SCHED":    st.SoftIRQ.Sched,
			"HRTIMER":  st.SoftIRQ.Hrtimer,
			"RCU":      st.SoftIRQ.Rcu,
		},
	}

	// Host facts are informational, a failure leaves them zero.
	if count, err := cpu.CountsWithContext(ctx, true); err != nil {
		log.WithError(err).Warn("Failed to count logical CPUs")
	} else {
		info.LogicalCPUs = count
	}
	if version, err := host.KernelVersionWithContext(ctx); err != nil {
		log.WithError(err).Warn("Failed to read kernel version")
	} else {
		info.KernelVersion = version
	}

	return info, nil
}
