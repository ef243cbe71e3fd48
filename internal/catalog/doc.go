// Package catalog discovers the ordered audio segments that make up a book.
//
// Discover lists the input folder (non-recursively), keeps files with the
// configured extension, orders them by name, and probes each one exactly once
// through an ffprobe.Prober. Probe results are cached for the lifetime of the
// Catalog so that bitrate derivation and total-duration computation share a
// single pass.
//
// The output bitrate is taken from the first segment only. Every segment in a
// book is assumed to share the same bitrate.
package catalog
