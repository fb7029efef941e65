//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs the tests.
var Default = Test

// Build compiles the koelner binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "koelner", "./cmd/koelner")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the koelner binary.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/koelner")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("koelner")
}
