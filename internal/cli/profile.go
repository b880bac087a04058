package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"stegbench/internal/logging"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

type profilers struct {
	logger *logging.Logger

	cpuProfileOutput *os.File

	memDumpPath        string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	profilerStopped    chan struct{}
}

func (p *profilers) startCPUProfiler(path string) error {
	profileOutput, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		_ = profileOutput.Close()
		return fmt.Errorf("starting CPU profiler: %w", err)
	}
	p.cpuProfileOutput = profileOutput
	return nil
}

func (p *profilers) startMemoryProfiler(dumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	p.memDumpPath = dumpPath
	p.shouldProfilerStop = make(chan struct{})
	p.profilerStopped = make(chan struct{})
	go func() {
		defer close(p.profilerStopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.shouldProfilerStop:
				return
			case <-ticker.C:
				p.dumpMemoryProfile()
			}
		}
	}()
}

func (p *profilers) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		p.logger.WithError(err).Warn("Error taking heap profile")
		return
	}
	p.heapDumps = append(p.heapDumps, w.Bytes())
}

// stop ends every running profiler and writes the collected heap dumps. It is safe to call more than once.
func (p *profilers) stop() {
	if p.cpuProfileOutput != nil {
		pprof.StopCPUProfile()
		_ = p.cpuProfileOutput.Close()
		p.cpuProfileOutput = nil
	}

	if p.shouldProfilerStop == nil {
		return
	}
	close(p.shouldProfilerStop)
	<-p.profilerStopped
	p.shouldProfilerStop = nil
	p.dumpMemoryProfile()

	_ = os.MkdirAll(p.memDumpPath, os.ModePerm)
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644)
		if err != nil {
			p.logger.WithError(err).Error("Error writing memory profile to disk")
		}
	}
	p.heapDumps = nil
}
