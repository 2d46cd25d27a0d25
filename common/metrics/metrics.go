// Package metrics provides the small ambient-observability surface the
// teacher wires into every node's main.go (a statsviz endpoint reachable at
// /debug/statsviz/), generalized here with a periodic CPU/RSS logger for
// long-running self-play batches (github.com/shirou/gopsutil/v3), since
// cmd/selfplay runs unattended for far longer than the teacher's
// request-driven services.
package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/arl/statsviz"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"mahjongcore/common/log"
)

// Serve registers the statsviz endpoint and blocks serving addr, matching
// the teacher's metrics.Serve(addr) call shape from its main.go files.
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}

// LogResourceUsage logs this process's CPU percent and RSS every interval
// until stop is closed, for operators watching a long self-play batch run.
func LogResourceUsage(interval time.Duration, stop <-chan struct{}) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("metrics: could not attach to self process: %v", err)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			pct, _ := proc.CPUPercent()
			mem, _ := proc.MemoryInfo()
			total, _ := cpu.Counts(true)
			var rss uint64
			if mem != nil {
				rss = mem.RSS
			}
			log.Info("resource usage: cpu=%.1f%% rss=%dMiB cores=%d", pct, rss/(1<<20), total)
		}
	}
}
