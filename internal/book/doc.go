// Package book models the descriptive metadata of an audiobook: title,
// description, creators, the per-segment spine and the chapter list.
//
// A Descriptor is produced once per run by Load, which either decodes
// <input>/metadata/metadata.json or synthesizes a minimal default from the
// discovered segments. The two sources are never merged.
package book
