// Package health reports process health from uptime and Go heap usage.
package health

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	degradedPercent = 90
	highPercent     = 70

	// degradedSamples is how many consecutive critical checks it takes to
	// report degraded. A single sample near a GC cycle is routinely this high.
	degradedSamples = 3
)

type Uptime struct {
	Seconds   int64  `json:"seconds"`
	Formatted string `json:"formatted"`
}

// Memory figures are in megabytes, rounded to two decimals.
type Memory struct {
	Sys       float64 `json:"rss"`
	HeapTotal float64 `json:"heapTotal"`
	HeapUsed  float64 `json:"heapUsed"`
	Stack     float64 `json:"stack"`
}

type MemoryUsage struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

type Report struct {
	Success     bool        `json:"success"`
	Status      string      `json:"status"`
	Timestamp   string      `json:"timestamp"`
	Version     string      `json:"version"`
	Uptime      Uptime      `json:"uptime"`
	Memory      Memory      `json:"memory"`
	MemoryUsage MemoryUsage `json:"memoryUsage"`
	Environment string      `json:"environment"`
	AppVersion  string      `json:"appVersion,omitempty"`
	Goroutines  int         `json:"goroutines"`
}

// Healthy reports whether the heap has stayed below the degraded threshold.
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type Reporter struct {
	started    time.Time
	env        string
	appVersion string
	now        func() time.Time
	readMem    func(*runtime.MemStats)
	critical   atomic.Int32
}

func NewReporter(env, appVersion string) *Reporter {
	return &Reporter{
		started:    time.Now(),
		env:        env,
		appVersion: appVersion,
		now:        time.Now,
		readMem:    runtime.ReadMemStats,
	}
}

func (h *Reporter) Check() Report {
	var ms runtime.MemStats
	h.readMem(&ms)

	percent := 0
	if ms.HeapSys > 0 {
		percent = int(math.Round(float64(ms.HeapAlloc) / float64(ms.HeapSys) * 100))
	}
	status := StatusHealthy
	if percent >= degradedPercent {
		if h.critical.Add(1) >= degradedSamples {
			status = StatusDegraded
		}
	} else {
		h.critical.Store(0)
	}

	now := h.now()
	uptime := now.Sub(h.started)
	env := h.env
	if env == "" {
		env = "development"
	}
	return Report{
		Success:   true,
		Status:    status,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Version:   "v1",
		Uptime: Uptime{
			Seconds:   int64(uptime / time.Second),
			Formatted: FormatUptime(uptime),
		},
		Memory: Memory{
			Sys:       megabytes(ms.Sys),
			HeapTotal: megabytes(ms.HeapSys),
			HeapUsed:  megabytes(ms.HeapAlloc),
			Stack:     megabytes(ms.StackInuse),
		},
		MemoryUsage: MemoryUsage{Percent: percent, Status: memoryStatus(percent)},
		Environment: env,
		AppVersion:  h.appVersion,
		Goroutines:  runtime.NumGoroutine(),
	}
}

func memoryStatus(percent int) string {
	switch {
	case percent < highPercent:
		return "normal"
	case percent < degradedPercent:
		return "high"
	default:
		return "critical"
	}
}

func megabytes(b uint64) float64 {
	return math.Round(float64(b)/1024/1024*100) / 100
}

// FormatUptime renders d as "1d 2h 3m 4s", omitting zero units; zero renders as "0s".
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	secs := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}
