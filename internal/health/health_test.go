package health

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	testCases := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0s"},
		{59 * time.Second, "59s"},
		{time.Hour, "1h"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "1d 2h 3m 4s"},
		{2*24*time.Hour + 5*time.Minute, "2d 5m"},
		{1500 * time.Millisecond, "1s"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatUptime(tc.in))
		})
	}
}

func TestReporter_Check(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name           string
		heapAlloc      uint64
		expectedStatus string
		expectedMemory string
		expectedPct    int
	}{
		{name: "normal", heapAlloc: 50, expectedStatus: StatusHealthy, expectedMemory: "normal", expectedPct: 50},
		{name: "high", heapAlloc: 75, expectedStatus: StatusHealthy, expectedMemory: "high", expectedPct: 75},
		{name: "critical", heapAlloc: 95, expectedStatus: StatusDegraded, expectedMemory: "critical", expectedPct: 95},
		{name: "boundary", heapAlloc: 90, expectedStatus: StatusDegraded, expectedMemory: "critical", expectedPct: 90},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := &Reporter{
				started: start,
				env:     "production",
				now:     func() time.Time { return start.Add(90 * time.Second) },
				readMem: func(ms *runtime.MemStats) {
					ms.HeapSys = 100 << 20
					ms.HeapAlloc = tc.heapAlloc << 20
					ms.Sys = 200 << 20
				},
			}

			// when
			var report Report
			for range degradedSamples {
				report = h.Check()
			}

			// then
			assert.Equal(t, tc.expectedStatus, report.Status)
			assert.Equal(t, tc.expectedPct, report.MemoryUsage.Percent)
			assert.Equal(t, tc.expectedMemory, report.MemoryUsage.Status)
			assert.Equal(t, int64(90), report.Uptime.Seconds)
			assert.Equal(t, "1m 30s", report.Uptime.Formatted)
			assert.Equal(t, float64(100), report.Memory.HeapTotal)
			assert.Equal(t, float64(200), report.Memory.Sys)
			assert.Equal(t, "production", report.Environment)
			assert.Empty(t, report.AppVersion)
			assert.Equal(t, tc.expectedStatus == StatusHealthy, report.Healthy())
		})
	}
}

func TestNewReporter_DefaultsEnvironment(t *testing.T) {
	report := NewReporter("", "1.2.3").Check()

	assert.Equal(t, "development", report.Environment)
	assert.Equal(t, "1.2.3", report.AppVersion)
	assert.True(t, report.Success)
}

func TestReporter_Check_DegradesOnSustainedPressure(t *testing.T) {
	testCases := []struct {
		name     string
		samples  []uint64
		expected string
	}{
		{name: "single spike", samples: []uint64{95}, expected: StatusHealthy},
		{name: "two spikes", samples: []uint64{95, 92}, expected: StatusHealthy},
		{name: "sustained", samples: []uint64{95, 92, 90}, expected: StatusDegraded},
		{name: "recovery resets the run", samples: []uint64{95, 95, 40, 95, 95}, expected: StatusHealthy},
		{name: "recovers after degrading", samples: []uint64{95, 95, 95, 60}, expected: StatusHealthy},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var alloc uint64
			h := &Reporter{
				started: time.Now(),
				now:     time.Now,
				readMem: func(ms *runtime.MemStats) {
					ms.HeapSys = 100 << 20
					ms.HeapAlloc = alloc << 20
				},
			}

			// when
			var report Report
			for _, sample := range tc.samples {
				alloc = sample
				report = h.Check()
			}

			// then
			assert.Equal(t, tc.expected, report.Status)
			assert.Equal(t, int(alloc), report.MemoryUsage.Percent)
		})
	}
}
