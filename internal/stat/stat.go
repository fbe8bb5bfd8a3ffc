package stat

import "context"

// Info represents kernel-wide interrupt counters
type Info struct {
	KernelVersion   string            `json:"kernel_version"`
	LogicalCPUs     int               `json:"logical_cpus"`
	BootTime        uint64            `json:"boot_time"`
	InterruptsTotal uint64            `json:"interrupts_total"`
	SoftIRQTotal    uint64            `json:"softirq_total"`
	SoftIRQs        map[string]uint64 `json:"softirqs"`
}

// Reader interface for kernel statistics
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new statistics reader for the procfs mounted at procPath
func NewReader(procPath string) Reader {
	return newPlatformReader(procPath)
}
