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

// Shape-convert checks and converts overlay shape files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"seehuhn.de/go/shape/overlay"
	"seehuhn.de/go/shape/pdfdict"
	"seehuhn.de/go/shape/tools/internal/buildinfo"
	"seehuhn.de/go/shape/tools/internal/profile"
	"seehuhn.de/go/shape/wire"
)

var (
	heightArg  = flag.Float64("height", 0, "page height in PDF units, at least 0 (required for to-pdf)")
	numericArg = flag.Bool("numeric", false, "write coordinates as JSON numbers")
	legacyArg  = flag.Bool("legacy", false, "write the legacy format without colours")
	prefixArg  = flag.String("prefix", "", "prefix for annotation names (to-pdf)")
	verboseArg = flag.Bool("v", false, "print debug messages")
	versionArg = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

var errUsage = errors.New("invalid command line")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "shape-convert \u2014 check and convert overlay shape files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("shape-convert"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  shape-convert [options] <command> <file.json>\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  check    decode the file and print a summary\n")
		fmt.Fprintf(os.Stderr, "  convert  re-encode the file\n")
		fmt.Fprintf(os.Stderr, "  to-pdf   print square annotation dictionaries\n\n")
		fmt.Fprintf(os.Stderr, "Use \"-\" as the file name to read from standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  shape-convert check shapes.json\n")
		fmt.Fprintf(os.Stderr, "  shape-convert -numeric convert shapes.json\n")
		fmt.Fprintf(os.Stderr, "  shape-convert -height 842 to-pdf shapes.json\n")
	}
	flag.Parse()

	if *versionArg {
		fmt.Println(buildinfo.Short("shape-convert"))
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verboseArg {
		log.SetLevel(logrus.DebugLevel)
	}

	err := run(log, flag.Args(), os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	} else if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log logrus.FieldLogger, args []string, out *os.File) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected a command and a file name", errUsage)
	}
	cmd, fname := args[0], args[1]

	prof := &profile.Profiler{CPUFile: *cpuprofile, MemFile: *memprofile}
	if err := prof.Start(log); err != nil {
		return err
	}
	defer prof.Stop()

	data, err := readInput(fname)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":  fname,
		"bytes": len(data),
	}).Debug("input read")

	switch cmd {
	case "check":
		return check(out, data)
	case "convert":
		opt := &wire.Options{Legacy: *legacyArg}
		if *numericArg {
			opt.Numbers = wire.NumbersAsJSON
		}
		if term.IsTerminal(int(out.Fd())) {
			opt.Indent = "  "
		}
		return convert(out, data, opt)
	case "to-pdf":
		if err := checkHeight(*heightArg, flagGiven("height")); err != nil {
			return err
		}
		return toPDF(out, data, *heightArg, &pdfdict.EncodeOptions{NamePrefix: *prefixArg})
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// flagGiven reports whether the named flag was set on the command line.
func flagGiven(name string) bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

func checkHeight(height float64, given bool) error {
	switch {
	case !given:
		return fmt.Errorf("%w: to-pdf needs -height", errUsage)
	case height < 0 || math.IsNaN(height) || math.IsInf(height, 0):
		return fmt.Errorf("%w: invalid page height %g", errUsage, height)
	}
	return nil
}

func readInput(fname string) ([]byte, error) {
	if fname == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fname)
}

func check(w io.Writer, data []byte) error {
	shapes, err := wire.Decode(data)
	if err != nil {
		return err
	}

	var numRel, numColor int
	for _, s := range shapes {
		if s.Relations.Len() > 0 {
			numRel++
		}
		if s.ColorHex != "" {
			numColor++
		}
	}
	_, err = fmt.Fprintf(w, "%d shapes, %d with relations, %d with colour\n",
		len(shapes), numRel, numColor)
	return err
}

func convert(w io.Writer, data []byte, opt *wire.Options) error {
	shapes, err := wire.Decode(data)
	if err != nil {
		return err
	}
	out, err := wire.Encode(shapes, opt)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func toPDF(w io.Writer, data []byte, height float64, opt *pdfdict.EncodeOptions) error {
	squares, err := overlay.ImportJSON(data, height)
	if err != nil {
		return err
	}
	dicts, err := overlay.SquareDicts(squares, opt)
	if err != nil {
		return err
	}
	annots := make(pdfdict.Array, len(dicts))
	for i, dict := range dicts {
		annots[i] = dict
	}
	_, err = fmt.Fprintln(w, pdfdict.Format(annots))
	return err
}
