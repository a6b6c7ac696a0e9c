// Package health reports service liveness: database reachability plus
// basic host and runtime statistics.
package health

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

type Checker struct {
	db *pgxpool.Pool
}

type Status struct {
	Status     string         `json:"status"`
	Database   DatabaseHealth `json:"database"`
	Goroutines int            `json:"goroutines"`
	Host       HostStats      `json:"host"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type HostStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  float64 `json:"memory_used_mb"`
	AllocMB       float64 `json:"alloc_mb"`
}

func NewChecker(db *pgxpool.Pool) *Checker {
	return &Checker{db: db}
}

// Check pings the database and samples host load.
func (c *Checker) Check() Status {
	dbHealth := c.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	host := HostStats{AllocMB: float64(memStats.Alloc) / 1024 / 1024}
	if vm, err := mem.VirtualMemory(); err == nil {
		host.MemoryPercent = vm.UsedPercent
		host.MemoryUsedMB = float64(vm.Used) / 1024 / 1024
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		host.CPUPercent = pcts[0]
	}

	return Status{
		Status:     status,
		Database:   dbHealth,
		Goroutines: runtime.NumGoroutine(),
		Host:       host,
	}
}

func (c *Checker) checkDatabase() DatabaseHealth {
	if c.db == nil {
		return DatabaseHealth{Status: "unconfigured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return DatabaseHealth{Status: "healthy", ResponseTime: responseTime}
}
