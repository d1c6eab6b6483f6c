//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs Build.
var Default = Build

// Build compiles the milo binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "milo", "./cmd/milo")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install builds and installs milo after the tests pass.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/milo")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("milo")
}
