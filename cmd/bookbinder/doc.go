// Package main hosts the bookbinder CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once, then hands
// a conversion request to the assembly pipeline. Keep this package lean:
// behaviour belongs in the internal packages, and commands here only parse
// flags and render results.
package main
