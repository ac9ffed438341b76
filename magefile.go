//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified
var Default = Test

// Test runs the full unit test suite.
func Test() error {
	fmt.Println("Running regex test suite")
	return sh.RunV("go", "test", "-v", "./...")
}

// Bench runs `go test -bench=.` across the module. The pathological-pattern timings
// come from `regexbench -bench N`, not from this target.
func Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Build compiles regexbench.
func Build() error {
	fmt.Println("Building regexbench...")
	return sh.RunV("go", "build", "-o", "bin/regexbench", "./cmd/regexbench")
}

// Clean removes generated files.
func Clean() error {
	fmt.Println("Cleaning generated files...")
	return sh.Rm("bin")
}

// Install downloads module dependencies.
func Install() error {
	fmt.Println("Installing dependencies...")
	return sh.RunV("go", "mod", "download")
}

// Tidy tidies go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// Lint runs golangci-lint, if installed.
func Lint() error {
	fmt.Println("Running linter...")
	if !commandExists("golangci-lint") {
		fmt.Println("golangci-lint not found, skipping...")
		return nil
	}
	return sh.RunV("golangci-lint", "run")
}

// Dev reruns tests on save (requires watchexec).
func Dev() error {
	fmt.Println("Starting development mode...")
	if !commandExists("watchexec") {
		fmt.Println("install watchexec for auto-testing: brew install watchexec")
		return fmt.Errorf("watchexec not found")
	}
	return sh.RunV("watchexec", "-e", "go", "-i", "bin/", "--", "mage", "test")
}

// Release prepares a full release.
func Release() error {
	fmt.Println("Preparing release...")
	mg.SerialDeps(Clean, Install, Tidy, Lint, Test, Build)
	fmt.Println("Release ready!")
	return nil
}

// CI runs the continuous-integration pipeline.
func CI() error {
	fmt.Println("Running CI pipeline...")
	mg.SerialDeps(Install, Lint, Test)
	return nil
}

// commandExists reports whether cmd is on PATH.
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
