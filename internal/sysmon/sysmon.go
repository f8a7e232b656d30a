// Package sysmon samples host CPU and memory usage and the resident size of
// the running process for the result browser.
package sysmon

import (
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 // host-wide, 0.0 .. 100.0
	MemPercent float64 // host-wide, 0.0 .. 100.0
	ProcessRSS uint64  // resident bytes of this process
}

// Sample collects a single snapshot. CPU uses interval=0 (delta since the
// last call). Fields that cannot be read are left at zero.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = clampPercent(cpuPcts[0])
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = clampPercent(vmem.UsedPercent)
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil && info != nil {
			s.ProcessRSS = info.RSS
		}
	}
	return s
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
