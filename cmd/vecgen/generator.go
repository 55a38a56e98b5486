// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// laneNames are the component letters, indexed by lane.
const laneNames = "xyzw"

// Generator writes the swizzle selector table.
type Generator struct {
	OutputFile string
	Package    string
	Logger     *slog.Logger
}

// Selector describes one generated variable.
type Selector struct {
	Name    string
	Indices [4]uint8
}

// Selectors returns all 256 lane patterns in index order: XXXX, XXXY, ...,
// WWWW.
func Selectors() []Selector {
	upper := cases.Upper(language.Und)
	out := make([]Selector, 0, 256)
	for n := range 256 {
		var s Selector
		var name [4]byte
		for k := range 4 {
			i := uint8(n >> (2 * (3 - k)) & 3)
			s.Indices[k] = i
			name[k] = laneNames[i]
		}
		s.Name = "Swizzle" + upper.String(string(name[:]))
		out = append(out, s)
	}
	return out
}

// Source returns the formatted Go source of the selector table.
func (g *Generator) Source() ([]byte, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("package name is empty")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by vecgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.Package)
	fmt.Fprintf(&buf, "// Named swizzle selectors. SwizzleABCD moves lane A of the source to lane 0,\n")
	fmt.Fprintf(&buf, "// lane B to lane 1, lane C to lane 2 and lane D to lane 3.\n")
	fmt.Fprintf(&buf, "var (\n")
	for _, s := range Selectors() {
		i := s.Indices
		fmt.Fprintf(&buf, "\t%s = NewSwizzle(%d, %d, %d, %d)\n", s.Name, i[0], i[1], i[2], i[3])
	}
	fmt.Fprintf(&buf, ")\n")

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// Run generates the table and writes it to g.OutputFile.
func (g *Generator) Run() error {
	log := g.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	src, err := g.Source()
	if err != nil {
		return err
	}
	log.Debug("generated selectors", slog.Int("bytes", len(src)))

	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	log.Info("wrote selector table", slog.String("file", g.OutputFile), slog.String("package", g.Package))
	return nil
}
