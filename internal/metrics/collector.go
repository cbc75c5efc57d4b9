package metrics

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
)

// Collector periodically logs system resource usage during a conversion.
// Large region extracts can run for minutes; the samples make it obvious
// whether a slow run is CPU or memory bound.
type Collector struct {
	interval time.Duration
	logger   *zap.Logger
	proc     *process.Process
}

// NewCollector creates a collector sampling at the given interval
func NewCollector(interval time.Duration, logger *zap.Logger) *Collector {
	if interval < time.Second {
		interval = 30 * time.Second
	}

	proc, _ := process.NewProcess(int32(os.Getpid()))

	return &Collector{
		interval: interval,
		logger:   logger,
		proc:     proc,
	}
}

// Start begins periodic collection. Returns when the context is cancelled.
func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// First sample immediately to establish the baseline
	c.collect()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("Metrics collection stopped")
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

func (c *Collector) collect() {
	fields := make([]zap.Field, 0, 4)

	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		fields = append(fields, zap.Float64("cpu_pct", round1(cpuPercent[0])))
	}

	if c.proc != nil {
		if procCPU, err := c.proc.Percent(0); err == nil {
			fields = append(fields, zap.Float64("process_cpu_pct", round1(procCPU)))
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		fields = append(fields,
			zap.Float64("mem_used_gb", round1(float64(vm.Used)/(1024*1024*1024))),
			zap.Float64("mem_pct", round1(vm.UsedPercent)),
		)
	}

	c.logger.Info("System metrics", fields...)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
