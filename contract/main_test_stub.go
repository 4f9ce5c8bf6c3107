//go:build test

package main

// Stub entry point for host-side builds under the test tag; exported.go
// (which carries the wasm exports) is excluded there, leaving package main
// without a main function to link.
func main() {}
