// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties (codec, sample rate, bitrate)
//   - Format: container-level metadata (duration, size, bitrate)
//   - CLI: a Prober bound to a specific ffprobe binary
//
// Helper methods on Result provide duration, bitrate, and codec extraction in
// the units the segment catalog consumes.
package ffprobe
