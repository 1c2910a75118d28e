// seehuhn.de/go/pixels - a software rasterizer for 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command export renders all test cases with the scan converter and the
// line rasterizers and writes the results as PNG images.
// Run from the module root directory.
package main

import (
	"flag"
	"log"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"

	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/output", "output directory")
	verbose := flag.Bool("v", false, "log fill statistics")
	flag.Parse()

	if *verbose {
		pixels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, filepath.Join(*outDir, name+".png")); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

func export(tc testcases.TestCase, fname string) (err error) {
	surf := pixels.NewSurface(tc.Width, tc.Height)
	if err := testcases.Render(surf, tc); err != nil {
		return errors.Wrap(err, "render")
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return errors.Wrap(surf.WritePNG(f), "encode")
}
