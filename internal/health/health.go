package health

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HealthChecker reports process liveness plus host resource pressure. There
// is no database to ping; the ledgers live in process memory, so a live
// process is a healthy store.
type HealthChecker struct {
	startedAt time.Time
}

type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{startedAt: time.Now()}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	status := HealthStatus{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}

	cpuPercents, _ := cpu.Percent(0, false)
	if len(cpuPercents) > 0 {
		status.CPUPercent = cpuPercents[0]
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		status.MemoryPercent = memStats.UsedPercent
	}

	return status
}
