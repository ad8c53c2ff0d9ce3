//go:build mage

// Package main contains Mage build targets for arxiv-mcp developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "arxiv-mcp"
	cmdPkg  = "./cmd/arxiv-mcp"
)

// packages lists the source trees that Test and Vet check.
var packages = []string{"./cmd/...", "./internal/...", "./pkg/..."}

// Build compiles the CLI binary into bin/, stamping the version from
// $VERSION when set.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	args := append([]string{"test", "-race", "-count=1"}, packages...)
	return sh.RunV("go", args...)
}

// Vet runs go vet and fails on unformatted files.
func Vet() error {
	if err := sh.RunV("go", append([]string{"vet"}, packages...)...); err != nil {
		return err
	}
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg", "magefiles")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Check runs Vet and Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Serve builds the binary and runs the MCP server over HTTP on :8080.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve", "--http", ":8080")
}

// Tools builds the binary and lists the tools it registers.
func Tools() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "tools")
}

// Clean removes build output.
func Clean() error {
	fmt.Println("Removing", binDir)
	return sh.Rm(binDir)
}
