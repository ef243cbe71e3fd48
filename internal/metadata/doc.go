// Package metadata assembles the tag and chapter block written into the
// output container, and renders it in ffmpeg's FFMETADATA1 format.
package metadata
