// seehuhn.de/go/shape - rectangle shapes for PDF annotation overlays
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile writes CPU and heap profiles for the command line tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// Profiler collects the profiles requested on the command line.
type Profiler struct {
	CPUFile string // CPU profile output, empty to disable
	MemFile string // heap profile output, empty to disable

	log logrus.FieldLogger
	cpu *os.File
}

// Start begins CPU profiling, if requested.  The caller must call
// [Profiler.Stop] before the program exits.  Problems while writing the
// profiles are reported to log.
func (p *Profiler) Start(log logrus.FieldLogger) error {
	p.log = log
	if p.CPUFile == "" {
		return nil
	}

	f, err := os.Create(p.CPUFile)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpu = f
	return nil
}

// Stop ends CPU profiling and writes the heap profile.
func (p *Profiler) Stop() {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		if err := p.cpu.Close(); err != nil {
			p.log.WithError(err).Warn("could not close CPU profile")
		}
		p.cpu = nil
	}

	if p.MemFile == "" {
		return
	}
	f, err := os.Create(p.MemFile)
	if err != nil {
		p.log.WithError(err).Warn("could not create memory profile")
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
		p.log.WithError(err).Warn("could not write memory profile")
	}
}
