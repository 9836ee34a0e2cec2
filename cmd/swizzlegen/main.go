// SPDX-License-Identifier: MIT

// Command swizzlegen writes the swizzle methods of the vector package.
//
// Usage:
//
//	swizzlegen -out zz_swizzle.go -pkg vector
//
// Or via go:generate from the vector package:
//
//	//go:generate go run ../cmd/swizzlegen -out zz_swizzle.go -pkg vector
//
// For every source arity N in {2,3,4} it emits one method per sequence of 2,
// 3 or 4 component picks (repetition allowed): N² + N³ + N⁴ methods per type.
// Single picks are the hand-written X/Y/Z/W getters and are not generated.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	outFile = flag.String("out", "zz_swizzle.go", "Output Go file")
	pkgName = flag.String("pkg", "vector", "Package name of the generated file")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	src, err := Generate(*pkgName)
	if err != nil {
		logger.Error("generate", "err", err)
		os.Exit(1)
	}
	if err = os.WriteFile(*outFile, src, 0o644); err != nil {
		logger.Error("write", "file", *outFile, "err", err)
		os.Exit(1)
	}
	logger.Info("swizzles written", "file", *outFile, "methods", MethodCount(), "bytes", len(src))
}

// usageError is reported when flags are inconsistent.
func usageError(msg string) error {
	return fmt.Errorf("swizzlegen: %s", msg)
}
