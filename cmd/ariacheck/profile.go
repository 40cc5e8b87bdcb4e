package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"
)

// profiles holds the CPU and heap profile outputs of one run. Empty paths
// disable the corresponding profile.
type profiles struct {
	cpuPath string
	memPath string
	cpu     *os.File
	logger  *zap.Logger
}

func startProfiles(cpuPath, memPath string, logger *zap.Logger) (*profiles, error) {
	p := &profiles{cpuPath: cpuPath, memPath: memPath, logger: logger}
	if cpuPath == "" {
		return p, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("cpu profile %s: %w", cpuPath, err), f.Close())
	}
	p.cpu = f
	return p, nil
}

// stop ends CPU profiling and writes the heap profile. Failures are logged
// and do not change the exit status.
func (p *profiles) stop() {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		if err := p.cpu.Close(); err != nil {
			p.logger.Error("closing cpu profile", zap.String("path", p.cpuPath), zap.Error(err))
		}
		p.cpu = nil
	}
	if p.memPath == "" {
		return
	}
	if err := writeHeapProfile(p.memPath); err != nil {
		p.logger.Error("writing heap profile", zap.String("path", p.memPath), zap.Error(err))
	}
}

func writeHeapProfile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
