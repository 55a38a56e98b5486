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

// Command vecgen generates the named swizzle selectors of package vec4.
//
// Usage:
//
//	vecgen -output selectors_gen.go
//	vecgen -output selectors_gen.go -pkg vec4 -v
//
// Or via go:generate, from the vec4 package directory:
//
//	//go:generate go run ../cmd/vecgen -output selectors_gen.go
//
// The output declares one package variable per lane pattern, SwizzleXXXX
// through SwizzleWWWW, each built with NewSwizzle.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	outputFile = flag.String("output", "selectors_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "vec4", "Output package name")
	verbose    = flag.Bool("v", false, "Log debug output to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageOut,
		Logger:     logger,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
